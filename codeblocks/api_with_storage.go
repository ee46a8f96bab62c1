package codeblocks

// APIWithStorage is an API with a key/value store for its handlers.
type APIWithStorage struct {
	*API
	Storage KeyValueStore
}

// NewAPIWithStorage creates an API backed by storage. A nil storage is
// replaced by an empty [DataStorage].
func NewAPIWithStorage(storage KeyValueStore, opts ...Option) *APIWithStorage {
	if storage == nil {
		storage = NewDataStorage()
	}
	return &APIWithStorage{
		API:     NewAPI(opts...),
		Storage: storage,
	}
}
