package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads the spec.md §6 configuration grammar from r: "key = value"
// pairs, "#" comments running to end of line, and "structParams = { ... }"
// / "attrParams = { ... }" blocks of comma-separated term expressions
// (either inline on one line or spread across several, terminated by a
// line containing "}"). Parse does not call Validate; callers decide when
// cross-key requirements must hold.
func Parse(r io.Reader) (*Config, error) {
	cfg := &Config{}
	scanner := bufio.NewScanner(r)

	var blockKey string
	inBlock := false

	for scanner.Scan() {
		line := stripComment(scanner.Text())
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if inBlock {
			closed := strings.Contains(line, "}")
			content := line
			if closed {
				content = content[:strings.Index(content, "}")]
			}
			if err := appendBlockTerms(cfg, blockKey, content); err != nil {
				return nil, err
			}
			if closed {
				inBlock = false
			}

			continue
		}

		key, rest, ok := splitBlockOpener(line)
		if ok {
			blockKey = strings.ToLower(key)
			closed := strings.Contains(rest, "}")
			content := rest
			if closed {
				content = content[:strings.Index(content, "}")]
			}
			if err := appendBlockTerms(cfg, blockKey, content); err != nil {
				return nil, err
			}
			if !closed {
				inBlock = true
			}

			continue
		}

		k, v, err := splitKeyValue(line)
		if err != nil {
			return nil, err
		}
		if err := assign(cfg, k, v); err != nil {
			return nil, err
		}
	}

	if inBlock {
		return nil, fmt.Errorf("%s: %w", blockKey, ErrUnterminatedBlock)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// stripComment truncates line at the first unquoted '#'.
func stripComment(line string) string {
	inQuote := false
	for i, r := range line {
		switch r {
		case '"':
			inQuote = !inQuote
		case '#':
			if !inQuote {
				return line[:i]
			}
		}
	}

	return line
}

// splitBlockOpener recognises "key = {" (with anything after the brace on
// the same line kept in rest, including a same-line closing brace).
func splitBlockOpener(line string) (key, rest string, ok bool) {
	idx := strings.Index(line, "=")
	if idx < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:idx])
	valuePart := strings.TrimSpace(line[idx+1:])
	if !strings.HasPrefix(valuePart, "{") {
		return "", "", false
	}

	return key, valuePart[1:], true
}

// appendBlockTerms splits content on commas, trims each term, and appends
// the non-empty ones to the named block's slice.
func appendBlockTerms(cfg *Config, blockKey, content string) error {
	for _, raw := range strings.Split(content, ",") {
		term := strings.TrimSpace(raw)
		if term == "" {
			continue
		}
		switch blockKey {
		case "structparams":
			cfg.StructParams = append(cfg.StructParams, term)
		case "attrparams":
			cfg.AttrParams = append(cfg.AttrParams, term)
		case "theta":
			v, err := strconv.ParseFloat(term, 64)
			if err != nil {
				return fmt.Errorf("theta=%q: %w", term, ErrBadValue)
			}
			cfg.Theta = append(cfg.Theta, v)
		default:
			return fmt.Errorf("%s: %w", blockKey, ErrUnknownKey)
		}
	}

	return nil
}

func splitKeyValue(line string) (key, value string, err error) {
	idx := strings.Index(line, "=")
	if idx < 0 {
		return "", "", fmt.Errorf("%q: %w", line, ErrMalformedLine)
	}
	key = strings.ToLower(strings.TrimSpace(line[:idx]))
	value = strings.TrimSpace(line[idx+1:])
	value = strings.Trim(value, `"`)

	return key, value, nil
}

func assign(cfg *Config, key, value string) error {
	switch key {
	case "isdirected":
		return assignBool(&cfg.IsDirected, key, value)
	case "isbipartite":
		return assignBool(&cfg.IsBipartite, key, value)
	case "numnodes":
		return assignInt(&cfg.NumNodes, key, value)
	case "numnodesa":
		return assignInt(&cfg.NumNodesA, key, value)
	case "numarcs":
		return assignInt(&cfg.NumArcs, key, value)
	case "citationergm":
		return assignBool(&cfg.CitationERGM, key, value)
	case "usetntsampler":
		return assignBool(&cfg.UseTNTSampler, key, value)
	case "useifdsampler":
		return assignBool(&cfg.UseIFDSampler, key, value)
	case "useborisenkoupdate":
		return assignBool(&cfg.UseBorisenkoUpdate, key, value)
	case "tieprob":
		return assignFloat(&cfg.TieProb, key, value)
	case "samplersteps":
		return assignInt(&cfg.SamplerSteps, key, value)
	case "ssteps":
		return assignInt(&cfg.SSteps, key, value)
	case "eesteps":
		return assignInt(&cfg.EESteps, key, value)
	case "eeinnersteps":
		return assignInt(&cfg.EEInnerSteps, key, value)
	case "aca_s":
		return assignFloat(&cfg.ACA_S, key, value)
	case "aca_ee":
		return assignFloat(&cfg.ACA_EE, key, value)
	case "compc":
		return assignFloat(&cfg.CompC, key, value)
	case "ifd_k":
		return assignFloat(&cfg.IFD_K, key, value)
	case "samplesize":
		return assignInt(&cfg.SampleSize, key, value)
	case "interval":
		return assignInt(&cfg.Interval, key, value)
	case "burnin":
		return assignInt(&cfg.BurnIn, key, value)
	case "networkfile":
		cfg.NetworkFile = value
	case "binaryattrfile":
		cfg.BinaryAttrFile = value
	case "categoricalattrfile":
		cfg.CategoricalAttrFile = value
	case "continuousattrfile":
		cfg.ContinuousAttrFile = value
	case "simnetfileprefix":
		cfg.SimNetFilePrefix = value
	case "tracefileprefix":
		cfg.TraceFilePrefix = value
	case "dyadcovarfile":
		cfg.DyadCovarFile = value
	case "dyadcovarname":
		cfg.DyadCovarName = value
	default:
		return fmt.Errorf("%s: %w", key, ErrUnknownKey)
	}

	return nil
}

func assignBool(dst *bool, key, value string) error {
	switch strings.ToLower(value) {
	case "true", "1", "yes":
		*dst = true
	case "false", "0", "no":
		*dst = false
	default:
		return fmt.Errorf("%s=%q: %w", key, value, ErrBadValue)
	}

	return nil
}

func assignInt(dst *int, key, value string) error {
	v, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s=%q: %w", key, value, ErrBadValue)
	}
	*dst = v

	return nil
}

func assignFloat(dst *float64, key, value string) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("%s=%q: %w", key, value, ErrBadValue)
	}
	*dst = v

	return nil
}
