package service

import (
	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/practicum/shareit-service/server/internal/repository"
)

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	producer sarama.SyncProducer
}

// NewService wires the business rules over the repository. The producer may be
// nil; booking events are then simply not published.
func NewService(repo repository.Repository, producer sarama.SyncProducer, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		producer: producer,
	}
}

// pageIndex converts a zero-based record offset to a page index. Offsets that
// are not a multiple of size round down to the page boundary; that rounding is
// part of the API contract.
func pageIndex(from, size int64) int64 {
	return from / size
}
