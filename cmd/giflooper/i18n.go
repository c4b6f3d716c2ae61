// Package main provides localization for the giflooper CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Rewrite an animated image so it loops forever.": "アニメーション画像を無限ループに書き換えます。",

		// Flags
		"Input animated image (GIF, APNG, or a still image).": "入力アニメーション画像（GIF、APNG、静止画）",
		"Output GIF path (default: <input>_looped.gif).":      "出力GIFパス（デフォルト: <入力>_looped.gif）",
		"Path to a YAML configuration file.":                  "YAML設定ファイルのパス",
		"Disable progress bars.":                              "プログレスバーを無効化",
		"Log level (debug, info, warn, error).":               "ログレベル（debug, info, warn, error）",
		"Suppress all log output.":                            "全てのログ出力を抑制",
		"Show version information.":                           "バージョン情報を表示",

		// Runtime messages
		"Interrupted, shutting down...":    "中断されました。シャットダウン中...",
		"Done! Your looping GIF is ready:": "完了！ループGIFの準備ができました:",
	})
}
