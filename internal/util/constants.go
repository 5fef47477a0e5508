package util

const (
	StorageLocal  = "local"
	StorageMinio  = "minio"
	StorageOSS    = "oss"
	StorageMemory = "memory"
)

// 客户端标识：没有登录体系，按请求头区分客户端
const (
	ClientIDHeader = "X-Client-ID"
	ClientIDKey    = "clientID"
)

// 文件上传相关常量
const (
	MimeVideo       = "video/"
	MimeText        = "text/plain"
	MimeOctetStream = "application/octet-stream"
)

const MaxPlaygroundFileSize = 256 << 10

var (
	AllowedVideoExtensions = []string{".mp4", ".mov", ".avi", ".mkv", ".wmv", ".flv", ".webm"}
)
