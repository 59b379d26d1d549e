package scanning

// transcriptionPrompt is the shared prompt used by all LLM providers. The
// ticket parser does the interpretation, so the model must only copy text.
const transcriptionPrompt = `You are an OCR engine reading a fuel station ticket (French receipts, Madagascar).
Transcribe ALL the text printed on the ticket exactly as it appears, top to bottom.

Rules:
- Keep one printed line per output line, in the original order
- Keep numbers exactly as printed, including commas, dots and spaces (e.g. "15 500,00")
- Keep dates and times exactly as printed (e.g. "05/03/2024", "14h30")
- Do not translate, summarize, correct or reformat anything
- Do not add labels, explanations or markdown code blocks
- If a word is unreadable, skip it`

// systemPrompt is sent as the system message to chat-style providers
const systemPrompt = "You transcribe text from images of receipts verbatim. You never interpret or rewrite the content."
