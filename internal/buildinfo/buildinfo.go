// internal/buildinfo/buildinfo.go
//
// 版本資訊：建置時以 -ldflags "-X bankaccounts/internal/buildinfo.Version=..." 覆寫。
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String 供 version 子命令輸出。
func String() string {
	return fmt.Sprintf("bankdemo %s (commit=%s, date=%s)", Version, Commit, Date)
}
