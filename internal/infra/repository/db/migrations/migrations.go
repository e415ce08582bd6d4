package migrations

import "embed"

// FS 內嵌的 migration 檔案, 供 golang-migrate iofs source 使用
//
//go:embed *.sql
var FS embed.FS
