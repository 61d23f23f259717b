package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/pkg/apperrors"
	"github.com/yigit/campusconnect/internal/pkg/helpers"
)

// AlumniDirectory is the alumni page model. Alumni holds the current page only.
type AlumniDirectory struct {
	Alumni     []dto.AlumniProfile
	Pagination dto.PaginationInfo
	Filter     dto.AlumniSearchForm
	Searched   bool
	Toasts     []dto.Toast
}

// AlumniService defines the interface for alumni directory operations
type AlumniService interface {
	Load(ctx context.Context) ([]dto.AlumniProfile, []dto.Toast)
	Search(ctx context.Context, keyword, company string) ([]dto.AlumniProfile, []dto.Toast)
	Directory(ctx context.Context, filter dto.AlumniSearchForm) AlumniDirectory
	Connect(ctx context.Context, alumniID int64) dto.Toast
}

// alumniServiceImpl implements the AlumniService interface
type alumniServiceImpl struct {
	api      AlumniAPI
	pageSize int
	logger   zerolog.Logger
}

// NewAlumniService creates a new alumni service instance
func NewAlumniService(api AlumniAPI, logger zerolog.Logger) AlumniService {
	return &alumniServiceImpl{
		api:      api,
		pageSize: helpers.DefaultPageSize,
		logger:   logger,
	}
}

// Load fetches the full directory
func (s *alumniServiceImpl) Load(ctx context.Context) ([]dto.AlumniProfile, []dto.Toast) {
	alumni, err := s.api.ListAlumni(ctx)
	if err != nil {
		return nil, []dto.Toast{ToastForError(s.logger, err, "Error", "Failed to load alumni data")}
	}
	return alumni, nil
}

// Search filters the directory. Two blank fields restore the full list
// without calling the search endpoint.
func (s *alumniServiceImpl) Search(ctx context.Context, keyword, company string) ([]dto.AlumniProfile, []dto.Toast) {
	filter := dto.AlumniSearchForm{Keyword: keyword, Company: company}
	if filter.IsEmpty() {
		return s.Load(ctx)
	}

	alumni, err := s.api.SearchAlumni(ctx, keyword, company)
	if err != nil {
		return nil, []dto.Toast{ToastForError(s.logger, err, "Search failed", "Unable to search alumni")}
	}
	return alumni, nil
}

// Directory loads or searches depending on filter and returns the requested page
func (s *alumniServiceImpl) Directory(ctx context.Context, filter dto.AlumniSearchForm) AlumniDirectory {
	alumni, toasts := s.Search(ctx, filter.Keyword, filter.Company)
	page, info := helpers.Paginate(alumni, filter.Page, s.pageSize)
	return AlumniDirectory{
		Alumni:     page,
		Pagination: info,
		Filter:     filter,
		Searched:   !filter.IsEmpty(),
		Toasts:     toasts,
	}
}

// Connect sends a connection request. The result only feeds a toast.
func (s *alumniServiceImpl) Connect(ctx context.Context, alumniID int64) dto.Toast {
	if alumniID <= 0 {
		return ToastForError(s.logger, apperrors.NewBadRequestError("Unknown alumni profile"), "Failed to connect", "Unable to send connection request")
	}
	if err := s.api.SendConnection(ctx, alumniID); err != nil {
		return ToastForError(s.logger, err, "Failed to connect", "Unable to send connection request")
	}
	s.logger.Info().Int64("alumniId", alumniID).Msg("Connection request sent")
	return dto.SuccessToast("Connection request sent!", "Your request has been sent to the alumni")
}
