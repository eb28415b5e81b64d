// Package prompt turns a user's meme request into the final instruction text
// sent to the image backend.
//
// [Synthesize] is pure: the same [models.PromptSpec] always yields the same
// string, and the sanitized user prompt is embedded verbatim after the
// "USER REQUEST:" marker so the original request can be recovered from any
// stored enhanced prompt.
//
// The instructional wording below is content policy aimed at an external
// model. It may be tuned freely; only the block order and the embedding of
// the user request are relied upon.
package prompt
