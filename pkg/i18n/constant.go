package i18n

var ALLOW_LANG = map[string]bool{
	"en":    true,
	"ko":    true,
	"zh-CN": true,
}

const DEFAULT_LANG = "en"

const (
	ERROR_INTERNAL          = "error.internal"
	ERROR_NOTFOUND          = "error.notfound"
	ERROR_INVALIDARGUMENT   = "error.invalidargument"
	ERROR_TOO_MANY_REQUESTS = "error.tooManyRequests"
	ERROR_UNAVAILABLE       = "error.unavailable"
)
