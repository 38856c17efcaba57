// Конфигурация сервиса анализа документов из переменных окружения.
// Значения полей Config задаются тегом env, неуказанные параметры получают значения по умолчанию.
// Секретные значения маскируются при выводе в лог.
package config

import (
	"log/slog"
	"reflect"
	"strings"
)

const (
	DefaultHTTPAddr        = ":8080"
	DefaultMetricsAddr     = ":2112"
	DefaultMaxDocumentSize = 5 << 20
)

type Config struct {
	HTTPAddr    string `env:"HTTP_ADDR"`
	MetricsAddr string `env:"METRICS_ADDR"`

	// Максимальный размер JSON документа в байтах
	MaxDocumentSize int `env:"MAX_DOCUMENT_SIZE"`

	MetricsDisabled bool `env:"METRICS_DISABLED"`

	// Неизвестные марки в документе считаются ошибкой, а не пропускаются
	SchemaStrictMarks bool `env:"SCHEMA_STRICT_MARKS"`

	// Токен для доступа к /metrics, пустой токен отключает проверку
	MetricsToken string `env:"METRICS_TOKEN"`
}

// ReadConfig загружает конфигурацию из переменных окружения и подставляет значения по умолчанию.
func ReadConfig() *Config {
	config := &Config{}

	envConfig("env", config)

	if config.HTTPAddr == "" {
		config.HTTPAddr = DefaultHTTPAddr
	}

	if config.MetricsAddr == "" {
		config.MetricsAddr = DefaultMetricsAddr
	}

	if config.MaxDocumentSize <= 0 {
		config.MaxDocumentSize = DefaultMaxDocumentSize
	}

	return config
}

// Присваивает полям в переданной структуре значения переменных. Название переменной для каждого поля лежит в теге этого поля.
func envConfig(key string, s interface{}) {
	v := reflect.ValueOf(s).Elem()
	typeParam := v.Type()
	for i := 0; i < v.NumField(); i++ {
		fName := typeParam.Field(i).Name
		fEnvTag := typeParam.Field(i).Tag.Get(key)

		if fEnvTag == "" || !Exist(fEnvTag) {
			continue
		}

		value := GetEnv(fEnvTag)
		if value == "" {
			continue
		}

		logValue := value
		if isSecret(fName) {
			logValue = maskValue(value)
		}
		slog.Info("Set config value",
			slog.String("key", typeParam.Name()+"."+fName),
			slog.String("value", logValue),
			slog.String("source", "ENVIRONMENT"),
		)

		switch v.Field(i).Interface().(type) {
		case string:
			v.Field(i).SetString(value)
		case int:
			v.Field(i).SetInt(int64(GetIntEnv(fEnvTag)))
		case bool:
			v.Field(i).SetBool(GetBoolEnv(fEnvTag))
		}
	}
}

func isSecret(fieldName string) bool {
	name := strings.ToLower(fieldName)
	return strings.Contains(name, "pass") || strings.Contains(name, "secret") || strings.Contains(name, "token")
}

// maskValue оставляет видимыми первый и последний символ.
func maskValue(value string) string {
	r := []rune(value)
	if len(r) <= 2 {
		return strings.Repeat("*", len(r))
	}
	return string(r[0]) + strings.Repeat("*", len(r)-2) + string(r[len(r)-1])
}
