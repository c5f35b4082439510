package utils

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type Client struct {
	Conn *grpc.ClientConn
	Ctx  context.Context

	cancel context.CancelFunc
}

// Utility function to create a gRPC connection to `url`
// Has to be closed (`c.Close()`)
func ApiCall(url string, timeout time.Duration, opts ...grpc.DialOption) (Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.Dial(url, opts...)
	if err != nil {
		return Client{}, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	return Client{
		Conn:   conn,
		Ctx:    ctx,
		cancel: cancel,
	}, nil
}

func (c Client) Close() {
	c.cancel()
	c.Conn.Close()
}
