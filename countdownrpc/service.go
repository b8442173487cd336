package countdownrpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/visalkrishnan/shopify-product-countdown-timer/pkg/grpclib"
)

// ServiceName ...
const ServiceName = "countdown.CountdownService"

// CountdownServiceServer ...
type CountdownServiceServer interface {
	Select(ctx context.Context, req *SelectRequest) (*SelectResponse, error)
	ListPromotions(ctx context.Context, req *ListPromotionsRequest) (*ListPromotionsResponse, error)
	UpsertPromotion(ctx context.Context, req *UpsertPromotionRequest) (*UpsertPromotionResponse, error)
	DeletePromotion(ctx context.Context, req *DeletePromotionRequest) (*DeletePromotionResponse, error)
}

type methodHandler = func(
	srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor,
) (interface{}, error)

func unaryHandler[Req any, Resp any](
	method string, call func(srv CountdownServiceServer, ctx context.Context, req *Req) (*Resp, error),
) methodHandler {
	fullMethod := "/" + ServiceName + "/" + method
	return func(
		srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor,
	) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CountdownServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(CountdownServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc of countdown.CountdownService, messages are encoded with the json codec
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CountdownServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Select",
			Handler: unaryHandler("Select",
				func(srv CountdownServiceServer, ctx context.Context, req *SelectRequest) (*SelectResponse, error) {
					return srv.Select(ctx, req)
				}),
		},
		{
			MethodName: "ListPromotions",
			Handler: unaryHandler("ListPromotions",
				func(
					srv CountdownServiceServer, ctx context.Context, req *ListPromotionsRequest,
				) (*ListPromotionsResponse, error) {
					return srv.ListPromotions(ctx, req)
				}),
		},
		{
			MethodName: "UpsertPromotion",
			Handler: unaryHandler("UpsertPromotion",
				func(
					srv CountdownServiceServer, ctx context.Context, req *UpsertPromotionRequest,
				) (*UpsertPromotionResponse, error) {
					return srv.UpsertPromotion(ctx, req)
				}),
		},
		{
			MethodName: "DeletePromotion",
			Handler: unaryHandler("DeletePromotion",
				func(
					srv CountdownServiceServer, ctx context.Context, req *DeletePromotionRequest,
				) (*DeletePromotionResponse, error) {
					return srv.DeletePromotion(ctx, req)
				}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "countdown",
}

// RegisterCountdownServiceServer ...
func RegisterCountdownServiceServer(s grpc.ServiceRegistrar, srv CountdownServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// CountdownServiceClient ...
type CountdownServiceClient interface {
	Select(ctx context.Context, in *SelectRequest, opts ...grpc.CallOption) (*SelectResponse, error)
	ListPromotions(
		ctx context.Context, in *ListPromotionsRequest, opts ...grpc.CallOption,
	) (*ListPromotionsResponse, error)
	UpsertPromotion(
		ctx context.Context, in *UpsertPromotionRequest, opts ...grpc.CallOption,
	) (*UpsertPromotionResponse, error)
	DeletePromotion(
		ctx context.Context, in *DeletePromotionRequest, opts ...grpc.CallOption,
	) (*DeletePromotionResponse, error)
}

type countdownServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCountdownServiceClient ...
func NewCountdownServiceClient(cc grpc.ClientConnInterface) CountdownServiceClient {
	return &countdownServiceClient{cc: cc}
}

func (c *countdownServiceClient) invoke(
	ctx context.Context, method string, in interface{}, out interface{}, opts []grpc.CallOption,
) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(grpclib.JSONCodecName)}, opts...)
	return c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...)
}

func (c *countdownServiceClient) Select(
	ctx context.Context, in *SelectRequest, opts ...grpc.CallOption,
) (*SelectResponse, error) {
	out := new(SelectResponse)
	if err := c.invoke(ctx, "Select", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *countdownServiceClient) ListPromotions(
	ctx context.Context, in *ListPromotionsRequest, opts ...grpc.CallOption,
) (*ListPromotionsResponse, error) {
	out := new(ListPromotionsResponse)
	if err := c.invoke(ctx, "ListPromotions", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *countdownServiceClient) UpsertPromotion(
	ctx context.Context, in *UpsertPromotionRequest, opts ...grpc.CallOption,
) (*UpsertPromotionResponse, error) {
	out := new(UpsertPromotionResponse)
	if err := c.invoke(ctx, "UpsertPromotion", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *countdownServiceClient) DeletePromotion(
	ctx context.Context, in *DeletePromotionRequest, opts ...grpc.CallOption,
) (*DeletePromotionResponse, error) {
	out := new(DeletePromotionResponse)
	if err := c.invoke(ctx, "DeletePromotion", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
