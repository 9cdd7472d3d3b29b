package doctors

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	Storage          contracts.Storage
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	objectStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			DoctorRepository: doctorRepository,
			Storage:          objectStorage,
			InternalConfig:   internalConfig,
			Log:              logger,
		}
	})
	return doctorUsecaseInstance
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error) {
	var imageObject string
	if request.Image != "" {
		imageData, extension, err := utils.DecodeBase64Image(request.Image)
		if err != nil {
			return nil, exceptions.ErrImageValidation(err)
		}
		if err := utils.ValidateImageFormat(extension, constvars.ImageAllowedDoctorFormats); err != nil {
			return nil, exceptions.ErrImageValidation(err)
		}

		objectName := fmt.Sprintf(constvars.DoctorImageObjectFormat, uuid.New().String(), extension)
		imageObject, err = uc.Storage.UploadBase64Image(ctx, imageData, objectName, extension)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	doctor := &models.Doctor{
		Name:        request.Name,
		Email:       request.Email,
		Specialty:   request.Specialty,
		ImageObject: imageObject,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	insertedID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		return nil, err
	}
	if objectID, convErr := primitive.ObjectIDFromHex(insertedID); convErr == nil {
		doctor.ID = objectID
	}

	return uc.buildDoctorResponse(ctx, doctor), nil
}

func (uc *doctorUsecase) GetDoctors(ctx context.Context) ([]responses.Doctor, error) {
	doctorList, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	doctorResponses := make([]responses.Doctor, 0, len(doctorList))
	for i := range doctorList {
		doctorResponses = append(doctorResponses, *uc.buildDoctorResponse(ctx, &doctorList[i]))
	}
	return doctorResponses, nil
}

func (uc *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID string) error {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotExist(nil)
	}

	if err := uc.DoctorRepository.DeleteByID(ctx, doctorID); err != nil {
		return err
	}

	if doctor.ImageObject != "" {
		if removeErr := uc.Storage.RemoveObject(ctx, doctor.ImageObject); removeErr != nil {
			// The record is gone; a leaked image object is only worth a log line.
			uc.Log.Warn("failed to remove doctor image object", zap.Error(removeErr))
		}
	}
	return nil
}

// buildDoctorResponse presigns a temporary URL for the stored image object so
// the document itself never carries a public link.
func (uc *doctorUsecase) buildDoctorResponse(ctx context.Context, doctor *models.Doctor) *responses.Doctor {
	doctorResponse := &responses.Doctor{
		ID:        doctor.ID.Hex(),
		Name:      doctor.Name,
		Email:     doctor.Email,
		Specialty: doctor.Specialty,
	}
	if doctor.ImageObject == "" {
		return doctorResponse
	}

	expiry := time.Duration(uc.InternalConfig.App.DoctorImageURLExpInHour) * time.Hour
	imageURL, err := uc.Storage.PresignedURL(ctx, doctor.ImageObject, expiry)
	if err != nil {
		uc.Log.Warn("failed to presign doctor image url", zap.Error(err))
		return doctorResponse
	}
	doctorResponse.ImageURL = imageURL
	return doctorResponse
}
