package i18n

var ALLOW_LANG = map[string]bool{
	"en":    true,
	"zh-CN": true,
}

const DEFAULT_LANG = "en"

const (
	ERROR_INTERNAL          = "error.internal"
	ERROR_NOT_FOUND         = "error.notfound"
	ERROR_INVALIDARGUMENT   = "error.invalidargument"
	ERROR_PERMISSION_DENIED = "error.permission.denied"
	ERROR_UNAUTHORIZED      = "error.unauthorized"
	ERROR_FORBIDDEN         = "error.forbidden"
	ERROR_TOO_MANY_REQUESTS = "error.tooManyRequests"
	ERROR_EXIST             = "error.exist"

	ERROR_INVALID_TOKEN          = "error.invalid.token"
	ERROR_COMMENTS_DISABLED      = "error.comments.disabled"
	ERROR_CLONING_DISABLED       = "error.cloning.disabled"
	ERROR_EMPTY_COMMENT          = "error.comment.empty"
	ERROR_INVALID_VISIBILITY     = "error.invalid.visibility"
	ERROR_INVALID_PERMISSION     = "error.invalid.permission"
	ERROR_INVALID_RECIPIENT      = "error.invalid.recipient"
	ERROR_SHARING_CONFIG_MISSING = "error.sharing.config.missing"
)
