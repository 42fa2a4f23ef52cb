package middleware

import (
	"todoapp/pkg/translator"

	"github.com/gin-gonic/gin"
)

const langKey = "lang"

// LanguageMiddleware resolves the response language from the `lang` query
// parameter, then the Accept-Language header, defaulting to English.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.Query(langKey)
		if lang == "" {
			lang = c.GetHeader("Accept-Language")
		}
		c.Set(langKey, translator.MatchLanguage(lang))
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(langKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
