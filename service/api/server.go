package api

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/visalkrishnan/shopify-product-countdown-timer/countdownrpc"
	"github.com/visalkrishnan/shopify-product-countdown-timer/pkg/otellib"
	"github.com/visalkrishnan/shopify-product-countdown-timer/service/admin"
	"github.com/visalkrishnan/shopify-product-countdown-timer/service/countdown"
)

//go:generate moq -out countdown_mocks_test.go -pkg api ../countdown IService:CountdownServiceMock
//go:generate moq -out admin_mocks_test.go -pkg api ../admin IService:AdminServiceMock

// Server implements countdown.CountdownService
type Server struct {
	countdown countdown.IService
	admin     admin.IService
}

var _ countdownrpc.CountdownServiceServer = &Server{}

// NewServer ...
func NewServer(countdownService countdown.IService, adminService admin.IService) *Server {
	return &Server{
		countdown: countdownService,
		admin:     adminService,
	}
}

func toStatusError(ctx context.Context, err error) error {
	cause := errors.Cause(err)
	switch {
	case cause == countdown.ErrMissingParameters,
		cause == admin.ErrMissingShop,
		cause == admin.ErrInvalidPromotion:
		return status.Error(codes.InvalidArgument, err.Error())

	case cause == admin.ErrPromotionNotFound:
		return status.Error(codes.NotFound, err.Error())

	default:
		otellib.WrapError(ctx, err)
		return status.Error(codes.Internal, err.Error())
	}
}

// Select ...
func (s *Server) Select(ctx context.Context, req *countdownrpc.SelectRequest) (*countdownrpc.SelectResponse, error) {
	output, err := s.countdown.Select(ctx, countdown.Input{
		Shop:          req.Shop,
		ProductID:     req.ProductID,
		CollectionIDs: req.CollectionIDs,
	})
	if err != nil {
		return nil, toStatusError(ctx, err)
	}
	if !output.Active {
		return &countdownrpc.SelectResponse{}, nil
	}
	return countdownrpc.NewSelectResponse(output.Promotion), nil
}

// ListPromotions ...
func (s *Server) ListPromotions(
	ctx context.Context, req *countdownrpc.ListPromotionsRequest,
) (*countdownrpc.ListPromotionsResponse, error) {
	promotions, err := s.admin.ListPromotions(ctx, req.Shop)
	if err != nil {
		return nil, toStatusError(ctx, err)
	}

	result := make([]countdownrpc.Promotion, 0, len(promotions))
	for _, p := range promotions {
		result = append(result, countdownrpc.NewPromotion(p))
	}
	return &countdownrpc.ListPromotionsResponse{
		Promotions: result,
	}, nil
}

// UpsertPromotion ...
func (s *Server) UpsertPromotion(
	ctx context.Context, req *countdownrpc.UpsertPromotionRequest,
) (*countdownrpc.UpsertPromotionResponse, error) {
	promotion, err := s.admin.UpsertPromotion(ctx, req.Shop, req.Promotion)
	if err != nil {
		return nil, toStatusError(ctx, err)
	}
	return &countdownrpc.UpsertPromotionResponse{
		Promotion: countdownrpc.NewPromotion(promotion),
	}, nil
}

// DeletePromotion ...
func (s *Server) DeletePromotion(
	ctx context.Context, req *countdownrpc.DeletePromotionRequest,
) (*countdownrpc.DeletePromotionResponse, error) {
	err := s.admin.DeletePromotion(ctx, req.Shop, req.ID)
	if err != nil {
		return nil, toStatusError(ctx, err)
	}
	return &countdownrpc.DeletePromotionResponse{}, nil
}
