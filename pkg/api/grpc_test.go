package api_test

import (
	"context"
	"net"
	"testing"

	"github.com/lioia/pagerank/pkg/api"
	"github.com/lioia/pagerank/pkg/rank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
)

func startGrpc(t *testing.T) grpc.DialOption {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	api.RegisterApiServer(server, &api.ApiServerImpl{Ranker: newRanker(t)})
	go server.Serve(lis)
	t.Cleanup(server.Stop)
	return grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	})
}

func TestGrpc_Rank(t *testing.T) {
	dialer := startGrpc(t)
	res, err := api.RankRemote("bufnet", api.RankRequest{
		Corpus: map[string][]string{
			"a.html": {},
		},
	}, dialer)
	require.NoError(t, err)
	assert.Equal(t, rank.Distribution{"a.html": 1.0}, res.Sampling)
	assert.Equal(t, rank.Distribution{"a.html": 1.0}, res.Iteration)
}

func TestGrpc_RankInvalid(t *testing.T) {
	dialer := startGrpc(t)
	_, err := api.RankRemote("bufnet", api.RankRequest{
		Corpus:  map[string][]string{"a": {}},
		Damping: 2,
	}, dialer)
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGrpc_Health(t *testing.T) {
	dialer := startGrpc(t)
	conn, err := grpc.Dial("bufnet", dialer, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()
	_, err = api.NewApiClient(conn).Health(context.Background(), &emptypb.Empty{})
	assert.NoError(t, err)
}

func TestStructRoundTrip(t *testing.T) {
	req := api.RankRequest{
		Corpus:  map[string][]string{"a": {"b"}, "b": {}},
		Damping: 0.5,
		Samples: 1000000,
		Seed:    12,
	}
	s, err := api.ToStruct(req)
	require.NoError(t, err)
	var decoded api.RankRequest
	require.NoError(t, api.FromStruct(s, &decoded))
	assert.Equal(t, req, decoded)
}
