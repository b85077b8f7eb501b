package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AdminController struct {
	Log            *zap.Logger
	AdminUsecase   contracts.AdminUsecase
	InternalConfig *config.InternalConfig
}

func NewAdminController(logger *zap.Logger, adminUsecase contracts.AdminUsecase, internalConfig *config.InternalConfig) *AdminController {
	return &AdminController{
		Log:            logger,
		AdminUsecase:   adminUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.LoginAdmin)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AdminUsecase.LoginAdmin(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, result)
}

// AddDoctor consumes the admin panel's multipart form. The portrait
// image is required, unlike patient profile updates.
func (ctrl *AdminController) AddDoctor(w http.ResponseWriter, r *http.Request) {
	bodyLimit := int64(ctrl.InternalConfig.App.RequestBodyLimitInMegabyte) * 1024 * 1024
	err := r.ParseMultipartForm(bodyLimit)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	fees, err := strconv.ParseInt(r.FormValue("fees"), 10, 64)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request := &requests.AddDoctor{
		Name:       r.FormValue("name"),
		Email:      r.FormValue("email"),
		Password:   r.FormValue("password"),
		Speciality: r.FormValue("speciality"),
		Degree:     r.FormValue("degree"),
		Experience: r.FormValue("experience"),
		About:      r.FormValue("about"),
		Fees:       fees,
	}
	if rawAddress := r.FormValue("address"); rawAddress != "" {
		if err := json.Unmarshal([]byte(rawAddress), &request.Address); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}
	}

	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}
	defer file.Close()

	if err := utils.ValidateImage(fileHeader, ctrl.InternalConfig.Minio.ProfilePictureMaxUploadSizeInMB); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}
	request.Image = file
	request.ImageHeader = fileHeader

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.AdminUsecase.AddDoctor(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DoctorAddedSuccess, result)
}

func (ctrl *AdminController) AllDoctors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AdminUsecase.ListAllDoctors(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorsSuccess, result)
}

func (ctrl *AdminController) ChangeAvailability(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ChangeAvailability)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.AdminUsecase.ChangeDoctorAvailability(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AvailabilityChangedSuccess, nil)
}
