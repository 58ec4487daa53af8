package log

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/polyfeat/pkg/errors"
)

// EnableZerologWarnings はライブラリの警告をzerologの構造化ログとして出力するように設定します。
// MarshalZerologObjectを実装する警告型はフィールド付きで出力されます。
//
// 例:
//
//	log.EnableZerologWarnings()
//	// 以降の errors.Warn(...) はJSON構造化ログとして出力される
func EnableZerologWarnings() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	errors.SetZerologWarnFunc(func(warning error) {
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			logger.Warn().EmbedObject(obj).Msg(warning.Error())
			return
		}
		logger.Warn().Err(warning).Msg("warning")
	})
}
