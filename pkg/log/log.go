// Package log encapsula o logrus e propaga pelo contexto os identificadores de
// correlação (requisições HTTP) e de execução do pipeline.
package log

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger é uma interface que define os métodos de log
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
}

type contextKey string

const (
	CorrelationIDKey contextKey = "correlation_id"
	RunIDKey         contextKey = "run_id"
)

// Formatos aceitos em LOG_FORMAT
const (
	FormatText = "text"
	FormatJSON = "json"
)

// contextFields lista, em ordem, as chaves do contexto copiadas para os logs
var contextFields = []contextKey{CorrelationIDKey, RunIDKey}

// logger reaproveita os métodos de nível do *logrus.Entry; apenas os que
// acrescentam campos são redefinidos para devolver Logger
type logger struct {
	*logrus.Entry
}

// L é uma instância global de Logger para uso direto
var L Logger = newLogger()

func newLogger() Logger {
	return logger{Entry: logrus.NewEntry(logrus.StandardLogger())}
}

// Configure aplica o nível e o formato (text ou json) informados.
// Valores inválidos caem para 'info' e texto.
func Configure(level, format string) {
	if format == FormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	L = newLogger()
}

// SetupTestLogger configura um logger simplificado para testes
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetReportCaller(false)

	L = newLogger()
}

func (l logger) WithField(key string, value interface{}) Logger {
	return logger{Entry: l.Entry.WithField(key, value)}
}

func (l logger) WithFields(fields Fields) Logger {
	return logger{Entry: l.Entry.WithFields(logrus.Fields(fields))}
}

func (l logger) WithError(err error) Logger {
	return logger{Entry: l.Entry.WithError(err)}
}

// WithContext copia para o log os identificadores presentes no contexto
func (l logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	fields := logrus.Fields{}
	for _, key := range contextFields {
		if value, ok := ctx.Value(key).(string); ok && value != "" {
			fields[string(key)] = value
		}
	}
	if len(fields) == 0 {
		return l
	}

	return logger{Entry: l.Entry.WithFields(fields)}
}

// WithCorrelationID gera um novo ID de correlação e o guarda no contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

// GetCorrelationID obtém o ID de correlação do contexto
func GetCorrelationID(ctx context.Context) string {
	correlationID, _ := ctx.Value(CorrelationIDKey).(string)
	return correlationID
}

// WithRunID associa ao contexto o identificador da execução do pipeline
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

// ForContext cria um logger com os identificadores do contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
