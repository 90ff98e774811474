package retitle

import "errors"

var (
	// ErrDocumentStoreRequired is returned when a document store is not provided.
	ErrDocumentStoreRequired = errors.New("document store required")

	// ErrTitleGeneratorRequired is returned when a title generator is not provided.
	ErrTitleGeneratorRequired = errors.New("title generator required")

	// ErrEmptyContent is returned when a document has no OCR content to
	// title. No provider is invoked for such documents.
	ErrEmptyContent = errors.New("document content is empty")
)
