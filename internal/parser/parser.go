// Package parser wires the full pipeline: format detection, text
// extraction, normalization, sectioning, the field extractors, and
// final assembly into one record.
package parser

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/talentsift/resume-parser/constants"
	"github.com/talentsift/resume-parser/internal/common"
	"github.com/talentsift/resume-parser/internal/contact"
	"github.com/talentsift/resume-parser/internal/education"
	"github.com/talentsift/resume-parser/internal/experience"
	"github.com/talentsift/resume-parser/internal/extract"
	"github.com/talentsift/resume-parser/internal/name"
	"github.com/talentsift/resume-parser/internal/nlp"
	"github.com/talentsift/resume-parser/internal/nlp/openai"
	"github.com/talentsift/resume-parser/internal/normalize"
	"github.com/talentsift/resume-parser/internal/resume"
	"github.com/talentsift/resume-parser/internal/section"
	"github.com/talentsift/resume-parser/internal/skills"
)

const rawTextSnapshotBytes = 4096

// Options tunes one Parse call.
type Options struct {
	DeclaredExt    string    // overrides the path's extension for detection
	JobDescription string    // when set, a taxonomy-overlap match score is computed
	OmitRawText    bool      // drop the normalized-text snapshot from the record
	Now            time.Time // zero means time.Now(); fixed for reproducible runs
}

// Parser is safe for concurrent use once constructed.
type Parser struct {
	cfg       *common.Config
	extractor *extract.Extractor
	names     *name.Engine
	skills    *skills.Engine
	logger    *slog.Logger
}

// New builds a Parser from config. A configured NLP endpoint is
// registered as the process-wide entity and embedding provider; the
// registry ignores repeat loads so constructing several parsers is fine.
func New(cfg *common.Config, logger *slog.Logger) *Parser {
	if cfg == nil {
		cfg = common.LoadConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.NLP.APIKey != "" {
		client := openai.NewClient(openai.Config{
			BaseURL:        cfg.NLP.BaseURL,
			APIKey:         cfg.NLP.APIKey,
			Model:          cfg.NLP.Model,
			EmbeddingModel: cfg.NLP.EmbeddingModel,
			Temperature:    cfg.NLP.Temperature,
			Timeout:        cfg.NLP.Timeout,
		}, logger)
		nlp.Load(client, client)
	}

	tax := skills.DefaultTaxonomy()
	if cfg.Taxonomy.Path != "" {
		loaded, err := skills.LoadTaxonomy(cfg.Taxonomy.Path)
		if err != nil {
			logger.Warn("parser.taxonomy.load_failed",
				slog.String("path", cfg.Taxonomy.Path),
				slog.String("error", err.Error()))
		} else {
			tax = loaded
		}
	}

	return &Parser{
		cfg: cfg,
		extractor: extract.NewExtractor(extract.Config{
			Pdftotext:      cfg.OCR.Pdftotext,
			Pdftoppm:       cfg.OCR.Pdftoppm,
			Tesseract:      cfg.OCR.Tesseract,
			Soffice:        cfg.Convert.Soffice,
			TesseractLang:  cfg.OCR.TesseractLang,
			DPI:            cfg.OCR.DPI,
			MaxOCRPages:    cfg.OCR.MaxPages,
			TessdataDir:    cfg.OCR.TessdataDir,
			ConvertTimeout: cfg.Convert.Timeout,
		}, logger),
		names:  name.NewEngine(logger),
		skills: skills.NewEngine(tax, logger),
		logger: logger,
	}
}

// Parse runs the whole pipeline over one file. The only error it
// returns is an unsupported format, surfaced before the pipeline is
// entered; every downstream failure degrades into warnings on a record
// that is always returned in full.
func (p *Parser) Parse(ctx context.Context, path string, opts Options) (*resume.ParsedResume, error) {
	requestID := common.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
		ctx = common.WithRequestID(ctx, requestID)
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	start := time.Now()

	declared := opts.DeclaredExt
	if declared == "" {
		declared = filepath.Ext(path)
	}
	format, err := extract.DetectFormat(path, declared)
	if err != nil {
		return nil, err
	}

	p.logger.Info("parser.start",
		slog.String("request_id", requestID),
		slog.String("path", path),
		slog.String("format", string(format)))

	extracted := p.extractor.Extract(ctx, path, format)
	text := normalize.Normalize(extracted.Text)
	lines := normalize.Lines(text)
	warnings := append([]string(nil), extracted.Warnings...)

	r := &resume.ParsedResume{
		Confidence: map[string]float64{},
		Metadata: resume.Metadata{
			RequestID:        requestID,
			SourceFile:       filepath.Base(path),
			Format:           string(format),
			ExtractionMethod: extracted.Method,
			ParsedAt:         now,
		},
	}

	if strings.TrimSpace(text) == "" {
		warnings = append(warnings, "no text could be extracted from the document")
		p.finish(ctx, r, start, warnings, "", opts)
		return r, nil
	}

	seg := section.Segment(lines)

	email := contact.ExtractEmail(text)
	phones := contact.ExtractPhones(text)
	links := contact.ExtractLinks(text)
	r.Contact = resume.Contact{
		Email:          email,
		Phone:          phones.Primary,
		AlternatePhone: phones.Alternate,
		Location:       contact.ExtractLocation(lines),
		LinkedIn:       links.LinkedIn,
		GitHub:         links.GitHub,
	}

	nameResult := p.names.Extract(ctx, name.Document{Text: text, Lines: lines, Email: email})
	r.Name = nameResult.Name
	r.Metadata.NameStrategies = nameResult.Strategies

	r.Summary = seg.Text(constants.SectionSummary)
	r.Skills = p.extractSkills(ctx, text, seg)
	var expWarnings []string
	r.Experience, expWarnings = p.extractExperience(ctx, lines, seg, now)
	warnings = append(warnings, expWarnings...)
	r.Education = p.extractEducation(lines, seg)
	r.Certifications = education.Certifications(seg.Lines(constants.SectionCertifications))
	r.Projects = education.Projects(seg.Lines(constants.SectionProjects))

	p.assemble(r, text, nameResult, now)
	p.finish(ctx, r, start, warnings, text, opts)

	p.logger.Info("parser.done",
		slog.String("request_id", requestID),
		slog.String("status", string(r.Status)),
		slog.Int("skills", len(r.Skills)),
		slog.Int("experience_entries", len(r.Experience)),
		slog.Duration("duration", time.Since(start)))
	return r, nil
}

func (p *Parser) extractSkills(ctx context.Context, text string, seg *section.Segmentation) []skills.Skill {
	var sources []skills.Source
	if s := seg.Text(constants.SectionSkills); s != "" {
		sources = append(sources, skills.Source{Text: s, Tier: skills.TierSection})
	}
	if s := seg.Text(constants.SectionExperience); s != "" {
		sources = append(sources, skills.Source{Text: s, Tier: skills.TierExperience})
	}
	sources = append(sources, skills.Source{Text: text, Tier: skills.TierDocument})
	return p.skills.Extract(ctx, sources)
}

func (p *Parser) extractExperience(ctx context.Context, lines []string, seg *section.Segmentation, now time.Time) ([]experience.Entry, []string) {
	scope := seg.Lines(constants.SectionExperience)
	if len(scope) == 0 {
		scope = lines
	}
	entries, warnings := experience.Extract(scope, now)
	for i := range entries {
		entries[i].Technologies = p.entryTechnologies(ctx, entries[i])
	}
	return entries, warnings
}

// entryTechnologies mines an entry's own narrative for taxonomy hits.
func (p *Parser) entryTechnologies(ctx context.Context, e experience.Entry) []string {
	body := e.Description + "\n" + strings.Join(e.Responsibilities, "\n")
	if strings.TrimSpace(body) == "" {
		return nil
	}
	hits := p.skills.Extract(ctx, []skills.Source{{Text: body, Tier: skills.TierExperience}})
	names := make([]string, 0, len(hits))
	for _, h := range hits {
		names = append(names, h.Name)
	}
	return names
}

func (p *Parser) extractEducation(lines []string, seg *section.Segmentation) []education.Entry {
	scope := seg.Lines(constants.SectionEducation)
	if len(scope) == 0 {
		scope = lines
	}
	return education.Extract(scope)
}

// finish stamps the shared trailer fields and closes out the record.
func (p *Parser) finish(ctx context.Context, r *resume.ParsedResume, start time.Time, warnings []string, text string, opts Options) {
	r.Metadata.Warnings = warnings
	r.Metadata.DurationMS = time.Since(start).Milliseconds()
	if !opts.OmitRawText && text != "" {
		r.RawText = truncateBytes(text, rawTextSnapshotBytes)
	}
	if opts.JobDescription != "" {
		r.MatchScore = p.matchScore(ctx, r, opts.JobDescription)
	}
	scoreConfidence(r)
	if r.Status == "" {
		r.Status = statusFor(aggregateConfidence(r))
	}
}

// matchScore is the fraction of taxonomy skills mentioned in the job
// description that the resume also carries. The description is free
// text, so it is mined at the document tier.
func (p *Parser) matchScore(ctx context.Context, r *resume.ParsedResume, jd string) float64 {
	wanted := p.skills.Extract(ctx, []skills.Source{{Text: jd, Tier: skills.TierDocument}})
	if len(wanted) == 0 {
		return 0
	}
	have := map[string]bool{}
	for _, s := range r.Skills {
		have[strings.ToLower(s.Name)] = true
	}
	matched := 0
	for _, w := range wanted {
		if have[strings.ToLower(w.Name)] {
			matched++
		}
	}
	return float64(matched) / float64(len(wanted))
}

func (p *Parser) assemble(r *resume.ParsedResume, text string, nameResult name.Result, now time.Time) {
	r.Confidence["name"] = nameResult.Confidence

	r.CurrentRole, r.CurrentCompany = currentPosition(r.Experience, now)

	var derivedMonths int
	for _, e := range r.Experience {
		derivedMonths += e.Months
	}
	derived := float64(derivedMonths) / 12
	stated := experience.StatedYears(text)
	r.TotalExperienceYears = roundTenth(maxFloat(stated, derived))

	r.Industry = inferIndustry(r.Skills)
}

// currentPosition prefers an entry still marked current, then the entry
// with the latest parseable end date.
func currentPosition(entries []experience.Entry, now time.Time) (role, company string) {
	var best *experience.Entry
	var bestEnd time.Time
	for i := range entries {
		e := &entries[i]
		if e.IsCurrent {
			return e.Role, e.Company
		}
		end, ok := experience.ParseDateToken(e.EndDate, now)
		if !ok {
			continue
		}
		if best == nil || end.After(bestEnd) {
			best, bestEnd = e, end
		}
	}
	if best != nil {
		return best.Role, best.Company
	}
	if len(entries) > 0 {
		return entries[0].Role, entries[0].Company
	}
	return "", ""
}

// inferIndustry votes by skill category and maps the most frequent one.
func inferIndustry(skillList []skills.Skill) constants.Industry {
	counts := map[string]int{}
	topCategory, topCount := "", 0
	for _, s := range skillList {
		if s.Category == "" {
			continue
		}
		counts[s.Category]++
		if counts[s.Category] > topCount {
			topCategory, topCount = s.Category, counts[s.Category]
		}
	}
	industry, _ := constants.CanonicalizeIndustry(topCategory)
	return industry
}

func truncateBytes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	// A byte cut can split a multi-byte rune; drop the partial tail.
	return strings.ToValidUTF8(s[:n], "")
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func roundTenth(f float64) float64 {
	return float64(int(f*10+0.5)) / 10
}
