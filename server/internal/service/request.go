package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/practicum/shareit-service/server/internal/model"
)

func (s *Service) CreateRequest(ctx context.Context, requestorID int64, description string) (model.ItemRequest, error) {
	if _, err := s.repo.GetUser(ctx, requestorID); err != nil {
		return model.ItemRequest{}, err
	}
	req, err := s.repo.CreateRequest(ctx, requestorID, description)
	if err != nil {
		return model.ItemRequest{}, err
	}
	s.log.Info("item request created", zap.Int64("id", req.ID))
	return req, nil
}

func (s *Service) ListRequestsOfUser(ctx context.Context, requestorID int64) ([]model.ItemRequestDetails, error) {
	if _, err := s.repo.GetUser(ctx, requestorID); err != nil {
		return nil, err
	}
	reqs, err := s.repo.ListRequestsOfUser(ctx, requestorID)
	if err != nil {
		return nil, err
	}
	return s.attachItemsToRequests(ctx, reqs)
}

func (s *Service) ListAllRequests(ctx context.Context, userID, from, size int64) ([]model.ItemRequestDetails, error) {
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	reqs, err := s.repo.ListRequestsOfOthers(ctx, userID, pageIndex(from, size), size)
	if err != nil {
		return nil, err
	}
	return s.attachItemsToRequests(ctx, reqs)
}

func (s *Service) GetRequest(ctx context.Context, requestID, userID int64) (model.ItemRequestDetails, error) {
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return model.ItemRequestDetails{}, err
	}
	req, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return model.ItemRequestDetails{}, err
	}
	list, err := s.attachItemsToRequests(ctx, []model.ItemRequest{req})
	if err != nil {
		return model.ItemRequestDetails{}, err
	}
	return list[0], nil
}

func (s *Service) attachItemsToRequests(ctx context.Context, reqs []model.ItemRequest) ([]model.ItemRequestDetails, error) {
	ids := make([]int64, 0, len(reqs))
	details := make([]model.ItemRequestDetails, 0, len(reqs))
	for _, req := range reqs {
		ids = append(ids, req.ID)
		details = append(details, model.ItemRequestDetails{ItemRequest: req, Items: []model.Item{}})
	}
	items, err := s.repo.ListItemsForRequests(ctx, ids)
	if err != nil {
		return nil, err
	}
	byRequest := make(map[int64][]model.Item)
	for _, item := range items {
		if item.RequestID == nil {
			continue
		}
		byRequest[*item.RequestID] = append(byRequest[*item.RequestID], item)
	}
	for i := range details {
		if list, ok := byRequest[details[i].ID]; ok {
			details[i].Items = list
		}
	}
	return details, nil
}
