// Package nlp holds the optional model-backed capabilities: named-entity
// recognition for the name engine and sentence embeddings for skill
// canonicalization. Both are process-wide lazy singletons; when no model is
// configured every call site treats the nil handle as a normal degraded path.
package nlp

import (
	"context"
	"math"
)

// Entity is one recognized span of text.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"` // PERSON | ORG | TITLE | OTHER
}

// EntityRecognizer finds named entities in a snippet of text.
type EntityRecognizer interface {
	RecognizeEntities(ctx context.Context, text string) ([]Entity, error)
}

// Embedder maps input strings to embedding vectors, one per input.
type Embedder interface {
	Embed(ctx context.Context, inputs []string) ([][]float32, error)
}

// CosineSimilarity computes the cosine similarity of two vectors, 0 for
// mismatched or zero-length inputs.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
