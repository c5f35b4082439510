package api

import (
	"encoding/json"
	"errors"

	"github.com/lioia/pagerank/pkg/graph"
	"github.com/lioia/pagerank/pkg/rank"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// RankRequest asks for both estimates of a corpus. Zero parameters fall back
// to the Ranker defaults.
type RankRequest struct {
	Corpus  map[string][]string `json:"corpus"`
	Damping float64             `json:"damping,omitempty"`
	Samples int                 `json:"samples,omitempty"`
	Seed    uint64              `json:"seed,omitempty"`
}

type RankResponse struct {
	Sampling   rank.Distribution `json:"sampling"`
	Iteration  rank.Distribution `json:"iteration"`
	Iterations int               `json:"iterations"`
}

// IsInvalidInput reports whether err was caused by the request rather than
// by the computation.
func IsInvalidInput(err error) bool {
	for _, target := range []error{
		graph.ErrEmptyCorpus, graph.ErrUnknownPage, graph.ErrSelfLink,
		rank.ErrInvalidDamping, rank.ErrInvalidSamples,
		rank.ErrInvalidThreshold, rank.ErrInvalidIterations,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// ToStruct converts v to a protobuf Struct through its JSON form.
func ToStruct(v any) (*structpb.Struct, error) {
	bytes, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	s := &structpb.Struct{}
	if err := protojson.Unmarshal(bytes, s); err != nil {
		return nil, err
	}
	return s, nil
}

// FromStruct decodes s into v through its JSON form.
func FromStruct(s *structpb.Struct, v any) error {
	bytes, err := protojson.Marshal(s)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, v)
}
