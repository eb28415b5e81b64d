package prompt

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/meme-forge/models"
)

// UserRequestMarker precedes the sanitized user prompt in every synthesized
// prompt.
const UserRequestMarker = "USER REQUEST:"

// Synthesize builds the backend prompt for spec.
//
// Blocks are emitted in a fixed order: global constraints, style preset,
// composition, brand colors, logo and assets, character, text rules, the
// user request and the closing reminder. Optional blocks appear only when
// their field is set.
func Synthesize(spec models.PromptSpec) string {
	blocks := make([]string, 0, 9)

	blocks = append(blocks, globalConstraints)
	blocks = append(blocks, stylePreset(spec.Style))
	blocks = append(blocks, compositionRules+"\n"+formatLine(spec.Format))

	if !spec.BrandColors.IsZero() {
		blocks = append(blocks, brandColorsBlock(spec.BrandColors))
	}

	if block := literalBlock(spec.LogoContext, spec.AssetContexts); block != "" {
		blocks = append(blocks, block)
	}

	if ctx := strings.TrimSpace(spec.CharacterContext); ctx != "" {
		blocks = append(blocks, characterRules+"\n\nCHARACTER DESCRIPTION:\n"+ctx)
	}

	if mentionsText(spec.UserPrompt) {
		blocks = append(blocks, textRules)
	}

	blocks = append(blocks, UserRequestMarker+"\n"+Sanitize(spec.UserPrompt))
	blocks = append(blocks, closingReminder)

	return strings.Join(blocks, "\n\n")
}

func brandColorsBlock(c models.BrandColors) string {
	var b strings.Builder
	b.WriteString("BRANDING COLORS TO USE:\n")
	if c.Primary != "" {
		fmt.Fprintf(&b, "- Primary brand color: %s (main color theme)\n", c.Primary)
	}
	if c.Secondary != "" {
		fmt.Fprintf(&b, "- Secondary brand color: %s (accent color)\n", c.Secondary)
	}
	b.WriteString("Incorporate these colors naturally while keeping the cartoon style.")
	return b.String()
}

func literalBlock(logo string, assets []string) string {
	logo = strings.TrimSpace(logo)

	nonEmpty := make([]string, 0, len(assets))
	for _, a := range assets {
		if a = strings.TrimSpace(a); a != "" {
			nonEmpty = append(nonEmpty, a)
		}
	}

	if logo == "" && len(nonEmpty) == 0 {
		return ""
	}

	var b strings.Builder
	if logo != "" {
		b.WriteString("LOGO/COIN TO INCLUDE:\n")
		b.WriteString(logo)
		b.WriteString("\n")
	}
	if len(nonEmpty) > 0 {
		if logo != "" {
			b.WriteString("\n")
		}
		b.WriteString("CUSTOM ASSETS TO INCLUDE:\n")
		for i, a := range nonEmpty {
			fmt.Fprintf(&b, "- Asset %d: %s\n", i+1, a)
		}
	}
	b.WriteString(literalRendering)

	return b.String()
}

func mentionsText(raw string) bool {
	lower := strings.ToLower(raw)
	for _, kw := range textKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ExtractUserRequest returns the user request embedded in a prompt produced
// by [Synthesize], or false if the marker is missing.
func ExtractUserRequest(synthesized string) (string, bool) {
	_, after, found := strings.Cut(synthesized, UserRequestMarker+"\n")
	if !found {
		return "", false
	}
	request, _, _ := strings.Cut(after, "\n\n"+closingReminder)
	return request, true
}
