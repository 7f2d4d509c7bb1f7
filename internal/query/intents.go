package query

import (
	"sort"
	"strings"

	"github.com/seiler-lab/biograph/internal/constants"
	"github.com/seiler-lab/biograph/internal/models"
	"github.com/seiler-lab/biograph/internal/similarity"
)

// intents holds the independent filter intents extracted from a question.
// Any subset may be empty.
type intents struct {
	omics      []models.OmicsType
	timepoints []string
	pathways   []string
	categories []string
	directions []models.ExpressionDirection
	drugTarget *bool // true = perturbed only, false = unperturbed only
	genes      []string
}

// omicsKeywords maps layer keywords to enum values. Checked by substring
// presence in the lower-cased query.
var omicsKeywords = []struct {
	keyword string
	layer   models.OmicsType
}{
	{"protein", models.OmicsProtein},
	{"metabolite", models.OmicsMetabolite},
	{"lipid", models.OmicsLipid},
	{"transcript", models.OmicsTranscript},
	{"mrna", models.OmicsTranscript},
	{"gene", models.OmicsTranscript},
}

// stopwords are dropped from the fuzzy-match input so filler words cannot
// produce spurious pathway or category hits.
var stopwords = map[string]bool{
	"show": true, "me": true, "the": true, "a": true, "an": true,
	"that": true, "are": true, "is": true, "of": true, "in": true,
	"at": true, "to": true, "for": true, "with": true, "and": true,
	"or": true, "what": true, "which": true, "how": true, "all": true,
	"any": true, "nodes": true, "node": true, "over": true, "time": true,
	"fold": true, "change": true, "changes": true, "by": true, "not": true,
	"drug": true, "drugs": true, "target": true, "targets": true,
	"affected": true, "perturbed": true, "unperturbed": true,
	"early": true, "late": true, "immediate": true, "long": true,
	"term": true, "hour": true, "hours": true, "hrs": true,
	"minute": true, "minutes": true,
}

// parse extracts the independent filter intents from the lower-cased
// query text.
func (e *Engine) parse(text string) intents {
	lower := strings.ToLower(text)
	tokens := similarity.TokenSet(lower)

	var in intents
	in.omics = parseOmics(lower)
	in.directions = parseDirections(lower)
	in.timepoints = e.parseTimepoints(lower, tokens, len(in.directions) > 0)
	in.drugTarget = parseDrugTarget(lower)
	in.genes = e.parseGenes(tokens)

	fuzzyInput := e.fuzzyInput(lower)
	if matches, err := fuzzyMatch(e.pathwayIdx, fuzzyInput, constants.PathwayMaxMatches, e.cfg.PathwayMinScore); err == nil {
		in.pathways = matches
	}
	in.categories = e.parseCategories(lower, fuzzyInput)

	return in
}

// parseOmics maps layer keyword mentions to enum values.
func parseOmics(lower string) []models.OmicsType {
	var out []models.OmicsType
	seen := make(map[models.OmicsType]bool)
	for _, kw := range omicsKeywords {
		if strings.Contains(lower, kw.keyword) && !seen[kw.layer] {
			seen[kw.layer] = true
			out = append(out, kw.layer)
		}
	}
	return out
}

// parseDirections detects expression-direction keywords.
func parseDirections(lower string) []models.ExpressionDirection {
	var out []models.ExpressionDirection
	if strings.Contains(lower, "upregulated") || strings.Contains(lower, "increased") || strings.Contains(lower, "higher") {
		out = append(out, models.DirectionUpregulated)
	}
	if strings.Contains(lower, "downregulated") || strings.Contains(lower, "decreased") || strings.Contains(lower, "lower") {
		out = append(out, models.DirectionDownregulated)
	}
	if strings.Contains(lower, "unchanged") || strings.Contains(lower, "stable") {
		out = append(out, models.DirectionUnchanged)
	}
	return out
}

// parseTimepoints matches time-point labels plus the coarse early/late
// synonyms. A bare mention of hours is only normalized into a label when
// the query carries no expression-direction keyword; this disambiguates
// against the unrelated phrase "fold change over time in hours".
func (e *Engine) parseTimepoints(lower string, tokens map[string]bool, hasDirection bool) []string {
	text := lower
	if !hasDirection {
		replacer := strings.NewReplacer(" hours", "h", " hour", "h", " hrs", "h", " minutes", "min", " min", "min")
		text = replacer.Replace(text)
	}

	var out []string
	seen := make(map[string]bool)
	add := func(tp string) {
		if !seen[tp] {
			seen[tp] = true
			out = append(out, tp)
		}
	}

	for _, tp := range e.timepoints {
		if strings.Contains(text, strings.ToLower(tp)) {
			add(tp)
		}
	}

	if (tokens["early"] || tokens["immediate"]) && len(e.timepoints) >= 2 {
		add(e.timepoints[0])
		add(e.timepoints[1])
	}
	if (tokens["late"] || strings.Contains(lower, "long-term") || strings.Contains(lower, "long term")) && len(e.timepoints) >= 2 {
		add(e.timepoints[len(e.timepoints)-2])
		add(e.timepoints[len(e.timepoints)-1])
	}

	return out
}

// parseDrugTarget detects the perturbation-flag intent. The negative forms
// are checked first since "not affected by lithium" contains "affected by".
func parseDrugTarget(lower string) *bool {
	no := false
	yes := true
	if strings.Contains(lower, "not affected") || strings.Contains(lower, "unperturbed") {
		return &no
	}
	if strings.Contains(lower, "drug target") || strings.Contains(lower, "affected by") || strings.Contains(lower, "perturbed") {
		return &yes
	}
	return nil
}

// parseGenes collects query tokens that exactly match an indexed gene
// symbol.
func (e *Engine) parseGenes(tokens map[string]bool) []string {
	var out []string
	for tok := range tokens {
		if canonical, ok := e.genes[tok]; ok {
			out = append(out, canonical)
		}
	}
	sort.Strings(out)
	return out
}

// parseCategories unions fuzzy index hits with a direct per-word substring
// check against each category's own words, which catches partial mentions
// like "immune" matching "Immune Response".
func (e *Engine) parseCategories(lower, fuzzyInput string) []string {
	seen := make(map[string]bool)
	var out []string

	if matches, err := fuzzyMatch(e.categoryIdx, fuzzyInput, constants.CategoryMaxMatches, e.cfg.CategoryMinScore); err == nil {
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}

	for _, c := range e.categories {
		if seen[c] {
			continue
		}
		if similarity.ContainsAnyWord(lower, c) {
			seen[c] = true
			out = append(out, c)
		}
	}

	return out
}

// fuzzyInput strips stopwords, intent keywords, time-point labels, and
// short tokens from the query so only candidate pathway/category words
// feed the fuzzy indexes.
func (e *Engine) fuzzyInput(lower string) string {
	labels := make(map[string]bool, len(e.timepoints))
	for _, tp := range e.timepoints {
		labels[strings.ToLower(tp)] = true
	}

	var kept []string
	for _, tok := range similarity.Tokenize(lower) {
		if len(tok) < 3 || stopwords[tok] || labels[tok] {
			continue
		}
		if isIntentKeyword(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// isIntentKeyword reports whether the token already drives another intent.
func isIntentKeyword(tok string) bool {
	for _, kw := range omicsKeywords {
		if strings.Contains(tok, kw.keyword) {
			return true
		}
	}
	switch {
	case strings.Contains(tok, "regulated"),
		strings.Contains(tok, "increas"),
		strings.Contains(tok, "decreas"),
		tok == "higher", tok == "lower",
		strings.Contains(tok, "unchanged"),
		tok == "stable":
		return true
	}
	return false
}
