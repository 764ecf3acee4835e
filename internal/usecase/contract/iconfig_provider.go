package usecasecontract

import "time"

// IConfigProvider exposes the settings use cases depend on.
type IConfigProvider interface {
	GetMaxUploadBytes() int64
	GetMaxPageSize() int
	GetReconcileInterval() time.Duration
	GetSagaStaleAfter() time.Duration
}
