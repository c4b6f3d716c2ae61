package giftools

import "testing"

func TestGetQualitySettings(t *testing.T) {
	tests := []struct {
		preset    QualityPreset
		wantFPS   int
		wantScale float64
	}{
		{QualityLow, 8, 0.5},
		{QualityMedium, 10, 0.7},
		{QualityHigh, 15, 1.0},
		{QualityPreset("bogus"), 10, 0.7}, // unknown falls back to medium
	}

	for _, tt := range tests {
		settings := GetQualitySettings(tt.preset)
		if settings.FPS != tt.wantFPS {
			t.Errorf("GetQualitySettings(%s).FPS = %d, want %d", tt.preset, settings.FPS, tt.wantFPS)
		}
		if settings.ScaleFactor != tt.wantScale {
			t.Errorf("GetQualitySettings(%s).ScaleFactor = %f, want %f", tt.preset, settings.ScaleFactor, tt.wantScale)
		}
	}
}

func TestNewConfigBuilder_Defaults(t *testing.T) {
	cfg := NewConfigBuilder().Build()

	if cfg.FPS != DefaultFPS {
		t.Errorf("FPS = %d, want %d", cfg.FPS, DefaultFPS)
	}
	if cfg.PresetFPS != 10 {
		t.Errorf("PresetFPS = %d, want 10", cfg.PresetFPS)
	}
	if cfg.ScaleFactor != 0.7 {
		t.Errorf("ScaleFactor = %f, want 0.7", cfg.ScaleFactor)
	}
	if cfg.Width != 0 {
		t.Errorf("Width = %d, want 0", cfg.Width)
	}
}

func TestConfigBuilder_WithQualityPreset(t *testing.T) {
	cfg := NewConfigBuilder().
		WithQualityPreset(QualityHigh).
		Build()

	if cfg.PresetFPS != 15 {
		t.Errorf("PresetFPS = %d, want 15", cfg.PresetFPS)
	}
	if cfg.ScaleFactor != 1.0 {
		t.Errorf("ScaleFactor = %f, want 1.0", cfg.ScaleFactor)
	}
	// The requested rate stays at the default so the preset rate wins.
	if cfg.FPS != DefaultFPS {
		t.Errorf("FPS = %d, want %d", cfg.FPS, DefaultFPS)
	}
}

func TestConfigBuilder_Overrides(t *testing.T) {
	cfg := NewConfigBuilder().
		WithQualityPreset(QualityLow).
		WithFPS(12).
		WithWidth(400).
		WithFFmpegPath("/usr/local/bin/ffmpeg").
		Build()

	if cfg.FPS != 12 {
		t.Errorf("FPS = %d, want 12", cfg.FPS)
	}
	if cfg.Width != 400 {
		t.Errorf("Width = %d, want 400", cfg.Width)
	}
	if cfg.PresetFPS != 8 {
		t.Errorf("PresetFPS = %d, want 8", cfg.PresetFPS)
	}
	if cfg.FFmpegPath != "/usr/local/bin/ffmpeg" {
		t.Errorf("FFmpegPath = %s, want /usr/local/bin/ffmpeg", cfg.FFmpegPath)
	}
}

func TestConfigBuilder_WithQualitySettings(t *testing.T) {
	cfg := NewConfigBuilder().
		WithQualitySettings(QualitySettings{FPS: 6, ScaleFactor: 0.4}).
		Build()

	if cfg.PresetFPS != 6 {
		t.Errorf("PresetFPS = %d, want 6", cfg.PresetFPS)
	}
	if cfg.ScaleFactor != 0.4 {
		t.Errorf("ScaleFactor = %f, want 0.4", cfg.ScaleFactor)
	}
}

func TestConfigBuilder_Validation(t *testing.T) {
	cfg := NewConfigBuilder().
		WithFPS(0).
		WithWidth(-10).
		WithScaleFactor(0).
		Build()

	if cfg.FPS != DefaultFPS {
		t.Errorf("FPS = %d, want %d", cfg.FPS, DefaultFPS)
	}
	if cfg.Width != 0 {
		t.Errorf("Width = %d, want 0", cfg.Width)
	}
	if cfg.ScaleFactor != 0.7 {
		t.Errorf("ScaleFactor = %f, want 0.7", cfg.ScaleFactor)
	}
}

func TestToOrchestratorConfig(t *testing.T) {
	cfg := NewConfigBuilder().
		WithQualityPreset(QualityHigh).
		WithWidth(640).
		Build()

	orchCfg := cfg.ToOrchestratorConfig([]string{"a.mp4", "b.mp4"}, "out.gif")

	if len(orchCfg.Inputs) != 2 {
		t.Errorf("Inputs length = %d, want 2", len(orchCfg.Inputs))
	}
	if orchCfg.OutputPath != "out.gif" {
		t.Errorf("OutputPath = %s, want out.gif", orchCfg.OutputPath)
	}
	if orchCfg.Width != 640 {
		t.Errorf("Width = %d, want 640", orchCfg.Width)
	}
	if orchCfg.PresetFPS != 15 {
		t.Errorf("PresetFPS = %d, want 15", orchCfg.PresetFPS)
	}
	if orchCfg.ScaleFactor != 1.0 {
		t.Errorf("ScaleFactor = %f, want 1.0", orchCfg.ScaleFactor)
	}
	if orchCfg.DefaultFPS != DefaultFPS {
		t.Errorf("DefaultFPS = %d, want %d", orchCfg.DefaultFPS, DefaultFPS)
	}
}
