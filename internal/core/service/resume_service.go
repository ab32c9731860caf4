package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"

	"github.com/portfolio-site/portfolio-api/internal/core/domain"
	"github.com/portfolio-site/portfolio-api/internal/core/ports"
)

const (
	pdfMIME = "application/pdf"
	// sniffLen matches the number of bytes mimetype inspects.
	sniffLen = 3072
)

type ResumeService struct {
	repo     ports.ResumeRepository
	storage  ports.FileStorage
	recorder ports.EventRecorder
	folder   string
	maxBytes int64
	logger   zerolog.Logger
}

// NewResumeService wires the resume use cases. storage may be nil, in which
// case uploads fail with domain.ErrStorageUnavailable.
func NewResumeService(
	repo ports.ResumeRepository,
	storage ports.FileStorage,
	recorder ports.EventRecorder,
	folder string,
	maxBytes int64,
	logger zerolog.Logger,
) *ResumeService {
	return &ResumeService{
		repo:     repo,
		storage:  storage,
		recorder: recorder,
		folder:   folder,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

func (s *ResumeService) Download(ctx context.Context, meta ports.RequestMeta) (*domain.Resume, error) {
	r, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if s.recorder != nil {
		s.recorder.Enqueue(ports.RecordEventInput{
			EventType: domain.EventDownload,
			Page:      "resume",
			Meta:      meta,
		})
	}
	return r, nil
}

// Upload replaces the published resume. Only PDF content is accepted.
func (s *ResumeService) Upload(ctx context.Context, in ports.UploadResumeInput) (*domain.Resume, error) {
	if s.storage == nil {
		return nil, domain.ErrStorageUnavailable
	}
	if s.maxBytes > 0 && in.Size > s.maxBytes {
		return nil, domain.NewValidationError("file", fmt.Sprintf("must not exceed %d bytes", s.maxBytes))
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(in.Content, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("read resume: %w", err)
	}
	head = head[:n]
	if n == 0 {
		return nil, domain.NewValidationError("file", "is empty")
	}
	if mt := mimetype.Detect(head); !mt.Is(pdfMIME) {
		return nil, domain.NewValidationError("file", "must be a PDF document")
	}

	body := io.MultiReader(bytes.NewReader(head), in.Content)
	url, err := s.storage.Upload(ctx, body, s.folder, domain.ResumeID)
	if err != nil {
		s.logger.Error().Err(err).Str("filename", in.Filename).Msg("failed to upload resume")
		return nil, err
	}

	r := &domain.Resume{
		ID:          domain.ResumeID,
		Filename:    in.Filename,
		URL:         url,
		ContentType: pdfMIME,
		Size:        in.Size,
		UploadedAt:  time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info().Str("filename", r.Filename).Int64("size", r.Size).Msg("resume uploaded")
	return r, nil
}
