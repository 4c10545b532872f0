package nlp

import (
	"sync"
	"sync/atomic"
)

// The model handles are process-wide, read-only after install, and shared by
// every concurrent parse. Load is idempotent; only the first call installs.
var (
	loadOnce   sync.Once
	recognizer atomic.Pointer[EntityRecognizer]
	embedder   atomic.Pointer[Embedder]
)

// Load installs the optional model handles. A nil handle is the sentinel for
// "unavailable"; call sites degrade instead of erroring. Concurrent callers
// never observe a partially-initialized handle.
func Load(ner EntityRecognizer, emb Embedder) {
	loadOnce.Do(func() {
		if ner != nil {
			recognizer.Store(&ner)
		}
		if emb != nil {
			embedder.Store(&emb)
		}
	})
}

// NER returns the shared entity recognizer, nil when unavailable.
func NER() EntityRecognizer {
	if p := recognizer.Load(); p != nil {
		return *p
	}
	return nil
}

// Embeddings returns the shared embedder, nil when unavailable.
func Embeddings() Embedder {
	if p := embedder.Load(); p != nil {
		return *p
	}
	return nil
}
