// Package main provides localization for the gifcreator CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Convert MP4 videos into a continuously looping GIF.": "MP4動画を無限ループGIFに変換します。",

		// Flags
		"Input MP4 file(s); glob patterns like 'clips/*.mp4' are expanded.": "入力MP4ファイル（'clips/*.mp4' のようなglobパターンも展開）",
		"Output GIF path (default: first input with .gif extension).":       "出力GIFパス（デフォルト: 先頭入力の拡張子を.gifに変更）",
		"Output frame rate (10 defers to the quality preset).":              "出力フレームレート（10は品質プリセットに従う）",
		"Output width in pixels; height keeps the aspect ratio.":            "出力幅（ピクセル、高さはアスペクト比を維持）",
		"Quality preset (low, medium, high).":                               "品質プリセット（low, medium, high）",
		"Path to the ffmpeg binary (default: search PATH).":                 "ffmpegバイナリのパス（デフォルト: PATHから検索）",
		"Output conversion summary to file (Markdown format).":              "変換サマリーをファイルに出力（Markdown形式）",
		"Path to a YAML configuration file.":                                "YAML設定ファイルのパス",
		"Disable progress bars.":                                            "プログレスバーを無効化",
		"Enable debug output.":                                              "デバッグ出力を有効化",
		"Directory for debug output.":                                       "デバッグ出力のディレクトリ",
		"Log level (debug, info, warn, error).":                             "ログレベル（debug, info, warn, error）",
		"Suppress all log output.":                                          "全てのログ出力を抑制",
		"Show version information.":                                         "バージョン情報を表示",

		// Runtime messages
		"Interrupted, shutting down...":                 "中断されました。シャットダウン中...",
		"Using %s":                                      "%s を使用します",
		"Make sure ffmpeg is installed and on your PATH:": "ffmpegがインストールされ、PATHに含まれていることを確認してください:",
		"Done! Your looping GIF is ready:":              "完了！ループGIFの準備ができました:",
		"Tip: File is %.1fMB. For smaller files, try:":  "ヒント: ファイルサイズは %.1fMB です。小さくするには次をお試しください:",
		"Summary saved to %s":                           "サマリーを %s に保存しました",
		"Failed to write summary: %s":                   "サマリーの書き込みに失敗しました: %s",
	})
}
