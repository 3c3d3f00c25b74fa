package config

const (
	defaultLogDir        = "~/.local/share/darkroom/logs"
	defaultOutputDirName = "converted"
	defaultQuality       = 95
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultFFmpegBinary  = "ffmpeg"
	defaultFFmpegPreset  = "ultrafast"
	defaultVideoCodec    = "libx264"
	defaultAudioCodec    = "aac"
	defaultFFmpegThreads = 1
)

func defaultImageExtensions() []string {
	return []string{".heic", ".heif"}
}

func defaultVideoExtensions() []string {
	return []string{".mov", ".qt", ".mp4", ".m4v"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Library: Library{
			OutputDirName:     defaultOutputDirName,
			OverwriteExisting: true,
		},
		Convert: Convert{
			Quality:         defaultQuality,
			Workers:         0,
			ImageExtensions: defaultImageExtensions(),
			VideoExtensions: defaultVideoExtensions(),
		},
		FFmpeg: FFmpeg{
			Binary:     defaultFFmpegBinary,
			Preset:     defaultFFmpegPreset,
			VideoCodec: defaultVideoCodec,
			AudioCodec: defaultAudioCodec,
			Threads:    defaultFFmpegThreads,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
