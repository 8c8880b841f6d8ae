package quizgen

import "fmt"

// formatInstructions describes the exact JSON document the model must emit.
// It stands in for a schema-derived format block and must stay in sync with
// domain.QuizOutput.
const formatInstructions = `The output must be a single JSON object with this exact structure:
{
  "title": "<article title>",
  "summary": "<2-3 sentence summary>",
  "key_entities": {
    "people": ["<name>", ...],
    "organizations": ["<organization>", ...],
    "locations": ["<location>", ...]
  },
  "sections": ["<topic area>", ...],
  "quiz": [
    {
      "question": "<question text>",
      "options": ["<option A>", "<option B>", "<option C>", "<option D>"],
      "answer": "<exact text of the correct option>",
      "difficulty": "easy" | "medium" | "hard",
      "explanation": "<why this answer is correct>"
    },
    ...
  ],
  "related_topics": ["<topic>", ...]
}`

const promptTemplate = `You are an expert educational content creator. Your task is to analyze a Wikipedia article and create a comprehensive, engaging quiz.

ARTICLE TITLE: %s

ARTICLE CONTENT:
%s

Based on this article, generate a structured quiz with the following components:

1. **Summary**: Write a concise 2-3 sentence summary of the article's main topic.

2. **Key Entities**: Extract and categorize important entities:
   - People: Names of individuals mentioned
   - Organizations: Companies, institutions, groups
   - Locations: Countries, cities, places

3. **Sections**: List 3-5 main topic areas covered in the article.

4. **Quiz Questions**: Generate 5-10 diverse questions that:
   - Cover different aspects of the article
   - Have varying difficulty levels (easy, medium, hard)
   - Include EXACTLY 4 options each (A-D)
   - Have clear correct answers
   - Include explanations that reference the article
   - Test comprehension, not just memorization

5. **Related Topics**: Suggest 3-5 related Wikipedia topics for further reading.

CRITICAL INSTRUCTIONS:
- Base ALL questions STRICTLY on information present in the article
- Do NOT hallucinate or add information not in the article
- Ensure questions are clear, unambiguous, and factually correct
- Make sure all 4 options are plausible but only one is correct
- Vary difficulty: 3-4 easy, 3-4 medium, 2-3 hard questions
- Explanations should clearly state why the answer is correct
- The "answer" field must contain the EXACT text of one of the options

IMPORTANT: Return ONLY valid JSON without any markdown formatting, code blocks, or extra text.
Do NOT wrap the JSON in ` + "```json ```" + ` or any other markers.
Return the raw JSON object directly.

%s

Generate the quiz now:`

func buildPrompt(title, bodyText string) string {
	return fmt.Sprintf(promptTemplate, title, bodyText, formatInstructions)
}
