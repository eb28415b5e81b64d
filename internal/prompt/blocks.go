package prompt

import (
	"github.com/MKhiriev/meme-forge/models"
)

const globalConstraints = `CRITICAL STYLE REQUIREMENTS:
- Cartoon illustration style ONLY, absolutely no photorealism
- Crypto meme aesthetic in the spirit of classic internet meme art
- Flat colors with bold black outlines (2-4px)
- Simple, exaggerated features and expressions
- Clean, vector-like appearance
- NO gradients, NO subtle shading, NO complex textures
- NO realistic lighting, shadows or 3D rendering effects

ORIGINALITY RULES:
- Do NOT reproduce real-world trademarked characters, mascots, logos or coin designs
- Render every described subject literally, exactly as the user describes it
- Never substitute a described character, logo or coin with a known lookalike`

const compositionRules = `COMPOSITION RULES:
- Clear focal point
- Simple background (solid color or basic pattern)
- Avoid cluttered scenes
- Strong silhouettes
- Exaggerated poses and expressions`

const characterRules = `CHARACTER CONSISTENCY:
- Maintain exact character features across all poses
- Same face shape, eye style and proportions
- Same color palette and line weight
- Same level of simplification`

const textRules = `TEXT RENDERING RULES:
- If text is needed, make it BOLD, CLEAN and READABLE
- Use simple block letters or comic-style fonts
- Text must be straight and properly aligned
- NO distorted, warped or illegible text
- Keep text minimal and impactful`

const literalRendering = `Render these exactly as described, in the same cartoon style. Do not replace them with any existing brand, mascot or coin.`

const closingReminder = `FINAL REMINDER:
Create this as a cartoon crypto meme illustration with:
- Flat colors and bold black outlines
- Simple, exaggerated features
- Clean, meme-ready aesthetic
- NO photorealism or complex details
- NO trademarked characters or lookalike substitutions`

// stylePreset returns the preset block of s. The default arm covers
// [models.StyleGeneral] and any out-of-range value.
func stylePreset(s models.Style) string {
	switch s {
	case models.StylePepe:
		return `STYLE PRESET: frog meme
- Original green frog character with simple features
- Flat green color, black outline, white eyes with black pupils
- Exaggerated expressions and simple body proportions`
	case models.StyleWojak:
		return `STYLE PRESET: feels-guy meme
- Simple humanoid character with minimal facial features
- Dots for eyes, a single line for the mouth
- Pale skin tone, bald or very simple hair
- Exaggerated emotional expressions`
	case models.StyleCartoon:
		return `STYLE PRESET: modern cartoon crypto character
- Bold outlines and flat colors
- Simplified anatomy with expressive eyes and mouth
- Fun, energetic vibe`
	default:
		return `STYLE PRESET: crypto meme cartoon
- Internet meme art style
- Bold, simple and immediately readable
- Exaggerated features for comedic effect
- Flat color design`
	}
}

func formatLine(f models.Format) string {
	switch f {
	case models.FormatHorizontal:
		return "- Wide horizontal frame, spread the scene left to right"
	case models.FormatVertical:
		return "- Tall vertical frame, stack the scene top to bottom"
	default:
		return "- Square frame, keep the subject centered"
	}
}

// textKeywords trigger the text rendering block when found in the raw prompt.
var textKeywords = []string{"text", "sign", "number", "word", "caption", "says", "letter", "label"}
