package extract

// extractionSystemPrompt steers the model toward exhaustive, JSON-only output
const extractionSystemPrompt = "You are a thorough fact-checking assistant. Extract ALL verifiable claims containing numbers, dates, percentages, or specific facts. Be comprehensive - extract at least 5-10 claims from economic or data-rich documents. Always respond with valid JSON."

// extractionPrompt precedes the chunk text in the user prompt
const extractionPrompt = `You are a fact-checking assistant. Your task is to extract specific, verifiable claims from the given text.

Focus on extracting claims that contain:
1. **Statistics and numerical data** (percentages, counts, measurements, GDP figures, growth rates)
2. **Dates and temporal claims** (when something happened, timelines, years)
3. **Financial figures** (prices, market caps, revenue, GDP, stock prices, economic forecasts)
4. **Technical specifications** (product specs, scientific data)
5. **Factual assertions** (who did what, where, historical facts, organizational details)

IMPORTANT: Extract ALL numerical claims, economic data, percentages, and dates you find. Be thorough.

For each claim, provide:
- The exact claim text as stated in the document
- The surrounding context (1-2 sentences before/after)
- The type of claim (statistic, date, financial, technical, factual)

Return your response as a JSON array with this structure:
[
    {
        "claim": "The exact claim text with specific numbers/dates",
        "context": "Surrounding context for better understanding",
        "claim_type": "statistic|date|financial|technical|factual"
    }
]

Extract at least 5-10 claims if the text contains numerical or factual data. Do NOT skip economic data, GDP figures, percentages, or dates.

TEXT TO ANALYZE:
`
