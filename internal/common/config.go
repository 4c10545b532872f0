package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all parser configuration.
type Config struct {
	OCR      OCRConfig
	Convert  ConvertConfig
	NLP      NLPConfig
	Taxonomy TaxonomyConfig
}

// OCRConfig holds OCR-related configuration.
type OCRConfig struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for scanned PDFs, default 300
	MaxPages      int    // page cap for PDF OCR fallback, default 10
	TessdataDir   string
}

// ConvertConfig holds legacy-document conversion configuration.
type ConvertConfig struct {
	Soffice string        // binary name or absolute path; if empty -> "soffice"
	Timeout time.Duration // subprocess timeout, default 30s
}

// NLPConfig holds the optional NER / embedding model configuration.
// An empty APIKey disables both models; every call site treats that as a
// normal degraded path.
type NLPConfig struct {
	BaseURL        string
	APIKey         string
	Model          string
	EmbeddingModel string
	Temperature    float32
	Timeout        time.Duration
}

// TaxonomyConfig points at an external skill taxonomy. Empty Path means the
// embedded taxonomy is used.
type TaxonomyConfig struct {
	Path string // .json or .xlsx
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		OCR: OCRConfig{
			Pdftotext:     getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Pdftoppm:      getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			DPI:           getEnvAsInt("OCR_DPI", 300),
			MaxPages:      getEnvAsInt("OCR_MAX_PAGES", 10),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
		},
		Convert: ConvertConfig{
			Soffice: getEnv("SOFFICE_BIN", "soffice"),
			Timeout: getEnvAsDuration("DOC_CONVERT_TIMEOUT", 30*time.Second),
		},
		NLP: NLPConfig{
			BaseURL:        getEnv("NLP_BASE_URL", "https://api.openai.com/v1"),
			APIKey:         getEnv("NLP_API_KEY", ""),
			Model:          getEnv("NLP_MODEL", "gpt-4o-mini"),
			EmbeddingModel: getEnv("NLP_EMBEDDING_MODEL", "text-embedding-3-small"),
			Temperature:    getEnvAsFloat32("NLP_TEMPERATURE", 0.0),
			Timeout:        getEnvAsDuration("NLP_TIMEOUT", 45*time.Second),
		},
		Taxonomy: TaxonomyConfig{
			Path: getEnv("SKILL_TAXONOMY_PATH", ""),
		},
	}
}

// Validate validates the loaded configuration.
func (c *Config) Validate() error {
	if c.OCR.DPI <= 0 {
		return NewAppError("CONFIG_ERROR", "OCR_DPI must be positive", ErrInvalidInput)
	}
	if c.OCR.MaxPages <= 0 {
		return NewAppError("CONFIG_ERROR", "OCR_MAX_PAGES must be positive", ErrInvalidInput)
	}
	if c.Convert.Timeout <= 0 {
		return NewAppError("CONFIG_ERROR", "DOC_CONVERT_TIMEOUT must be positive", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
