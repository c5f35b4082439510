package api

import (
	"context"
	"errors"
	"time"

	"github.com/lioia/pagerank/pkg/utils"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// The service uses protobuf well-known types only, so it is described by hand:
//
//	service Api {
//	  rpc Rank(google.protobuf.Struct) returns (google.protobuf.Struct);
//	  rpc Health(google.protobuf.Empty) returns (google.protobuf.Empty);
//	}
const (
	ApiServiceName   = "pagerank.Api"
	rankFullMethod   = "/pagerank.Api/Rank"
	healthFullMethod = "/pagerank.Api/Health"
)

type ApiServer interface {
	Rank(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Health(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
}

var ApiServiceDesc = grpc.ServiceDesc{
	ServiceName: ApiServiceName,
	HandlerType: (*ApiServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Rank", Handler: rankHandler},
		{MethodName: "Health", Handler: healthHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pagerank.proto",
}

func RegisterApiServer(s grpc.ServiceRegistrar, srv ApiServer) {
	s.RegisterService(&ApiServiceDesc, srv)
}

func rankHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApiServer).Rank(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: rankFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ApiServer).Rank(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func healthHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApiServer).Health(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: healthFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ApiServer).Health(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// ApiServerImpl serves the gRPC API with a Ranker
type ApiServerImpl struct {
	Ranker *Ranker
}

func (s *ApiServerImpl) Rank(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req RankRequest
	if err := FromStruct(in, &req); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "could not decode request: %v", err)
	}
	res, err := s.Ranker.Rank(ctx, "grpc", req)
	if err != nil {
		if IsInvalidInput(err) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, status.FromContextError(err).Err()
		}
		utils.WarnLog("grpc", "Rank failed: %v", err)
		return nil, status.Error(codes.Internal, err.Error())
	}
	return ToStruct(res)
}

func (s *ApiServerImpl) Health(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return &emptypb.Empty{}, nil
}

// ApiClient calls a remote pagerank.Api service
type ApiClient struct {
	cc grpc.ClientConnInterface
}

func NewApiClient(cc grpc.ClientConnInterface) *ApiClient {
	return &ApiClient{cc: cc}
}

func (c *ApiClient) Rank(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, rankFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ApiClient) Health(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, healthFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

const rankTimeout = 30 * time.Second

// RankRemote sends req to the gRPC API at url and decodes the answer
func RankRemote(url string, req RankRequest, opts ...grpc.DialOption) (RankResponse, error) {
	var res RankResponse
	in, err := ToStruct(req)
	if err != nil {
		return res, err
	}
	client, err := utils.ApiCall(url, rankTimeout, opts...)
	if err != nil {
		return res, err
	}
	defer client.Close()
	out, err := NewApiClient(client.Conn).Rank(client.Ctx, in)
	if err != nil {
		return res, err
	}
	err = FromStruct(out, &res)
	return res, err
}
