package catalog

import "strings"

type FilterOptions struct {
	Categories []string `json:"categories"`
	Colors     []string `json:"colors"`     // hex prefixes, e.g. "#FF"
	Foreground string   `json:"foreground"` // "black", "white" or empty for both
	FreeWords  string   `json:"q"`
}

func containsAny(hay []string, needles []string) bool {
	for _, n := range needles {
		for _, h := range hay {
			if strings.Contains(strings.ToLower(h), strings.ToLower(n)) {
				return true
			}
		}
	}
	return false
}

func Filter(entries []Entry, opt FilterOptions) []Entry {
	var out []Entry
	for _, e := range entries {
		if len(opt.Categories) > 0 {
			matched := false
			for _, c := range opt.Categories {
				if strings.EqualFold(e.Category, strings.TrimSpace(c)) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		if len(opt.Colors) > 0 {
			if !containsAny([]string{e.Color}, opt.Colors) {
				continue
			}
		}
		switch strings.ToLower(opt.Foreground) {
		case "black":
			if e.Foreground != "#000000" {
				continue
			}
		case "white":
			if e.Foreground != "#FFFFFF" {
				continue
			}
		}
		if opt.FreeWords != "" {
			ok := true
			for _, k := range strings.Fields(opt.FreeWords) {
				if !containsAny([]string{e.Emotion, e.Category}, []string{k}) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}
