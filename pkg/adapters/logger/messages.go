package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages
		"Starting conversion with %d input(s)": "%d 個の入力で変換を開始します",
		"Successfully created looping GIF: %s": "ループGIFを作成しました: %s",
		"Videos combined: %d":                  "結合した動画数: %d",
		"Total duration: %.1f seconds":         "合計時間: %.1f 秒",
		"File size: %d bytes (%.1f MB)":        "ファイルサイズ: %d バイト (%.1f MB)",

		// Resolve stage
		"No files match pattern '%s'":                  "パターン '%s' に一致するファイルがありません",
		"No MP4 files found in inputs. Trying anyway...": "入力にMP4ファイルが見つかりません。このまま試行します...",
		"Processing %d files in sequence:":             "%d 個のファイルを順番に処理します:",
		"File not found, skipping: %s":                 "ファイルが見つからないためスキップ: %s",
		"Not an MP4 file, skipping: %s":                "MP4ファイルではないためスキップ: %s",

		// Probe stage
		"Loading %d video file(s):":              "%d 個の動画ファイルを読み込み中:",
		"Duration: %.1fs, FPS: %.1f, Size: %dx%d": "再生時間: %.1f秒, FPS: %.1f, サイズ: %dx%d",
		"Failed to save probe JSON: %v":          "プローブJSONの保存に失敗しました: %v",

		// Plan stage
		"Target size for all videos: %dx%d": "全動画の目標サイズ: %dx%d",
		"Target FPS: %d":                    "目標FPS: %d",

		// Extract stage
		"Extracted %d frames from %s":     "%d フレームを抽出しました: %s",
		"Failed to save raw frame %d: %v": "生フレーム %d の保存に失敗しました: %v",

		// Transform stage
		"Clip %s already at target size":     "クリップ %s は既に目標サイズです",
		"Resizing %s from %dx%d to %s":       "%s を %dx%d から %s にリサイズ中",
		"Failed to save scaled frame %d: %v": "縮小フレーム %d の保存に失敗しました: %v",

		// Concat stage
		"Converting single video to GIF...":   "単一の動画をGIFに変換中...",
		"Stitching %d videos together...":     "%d 個の動画を連結中...",
		"Converting combined video to GIF...": "連結した動画をGIFに変換中...",

		// Encode stage
		"Encoded %d frames at %d fps (%d bytes)": "%d フレームを %d fps でエンコードしました (%d バイト)",

		// Reloop pipeline
		"Input file is %s, not GIF. Converting anyway...": "入力ファイルはGIFではなく%s形式です。このまま変換します...",
		"Frames: %d":                      "フレーム数: %d",
		"Average duration: %.1fms per frame": "平均表示時間: %.1fms/フレーム",
		"File size: %d bytes":             "ファイルサイズ: %d バイト",

		// Errors
		"Failed to resolve inputs: %s":  "入力の解決に失敗しました: %s",
		"Failed to probe clips: %s":     "クリップの解析に失敗しました: %s",
		"Failed to plan conversion: %s": "変換計画の作成に失敗しました: %s",
		"Failed to decode video: %s":    "動画のデコードに失敗しました: %s",
		"Failed to resize frames: %s":   "フレームのリサイズに失敗しました: %s",
		"Failed to combine clips: %s":   "クリップの結合に失敗しました: %s",
		"Failed to encode GIF: %s":      "GIFのエンコードに失敗しました: %s",
		"Failed to write output: %s":    "出力の書き込みに失敗しました: %s",
	})
}
