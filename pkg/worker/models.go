package worker

import (
	"github.com/lioia/pagerank/pkg/api"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const ContentType = "application/x-protobuf"

// Job is a rank request travelling on the work queue
type Job struct {
	ID string `json:"id"`
	api.RankRequest
}

// JobResult is published on the result queue (or the job reply queue)
type JobResult struct {
	ID    string `json:"id"`
	Error string `json:"error,omitempty"`
	*api.RankResponse
}

// Encode v as a protobuf Struct message body
func Encode(v any) ([]byte, error) {
	s, err := api.ToStruct(v)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(s)
}

// Decode a protobuf Struct message body into v
func Decode(body []byte, v any) error {
	var s structpb.Struct
	if err := proto.Unmarshal(body, &s); err != nil {
		return err
	}
	return api.FromStruct(&s, v)
}
