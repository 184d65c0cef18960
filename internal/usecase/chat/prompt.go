package chat

import "github.com/liutentor/tentor-backend/internal/entity"

const mathFormattingInstructions = `
VIKTIGT - Matematisk formattering:
- Använd ALLTID LaTeX-syntax för ALL matematik
- För inline-matematik: använd $...$, exempel: $x^2 + y^2 = z^2$
- För block-matematik: använd $$...$$, exempel:
$$
f(x) = \int_{a}^{b} x^2 dx
$$
- Använd ALDRIG \[...\] eller \(...\) syntax
- Alla formler, ekvationer, variabler och matematiska uttryck måste vara i LaTeX
- Exempel på korrekt formatering:
  * "Lös ekvationen $ax^2 + bx + c = 0$ med hjälp av formeln:"
  * "$$x = \frac{-b \pm \sqrt{b^2 - 4ac}}{2a}$$"`

// buildSystemPrompt selects the mentor directive: solution access is
// decided by whether an answer key exists, teaching style by the
// caller's giveDirectAnswer flag.
func buildSystemPrompt(hasSolution, giveDirectAnswer bool) string {
	const baseRole = "Du är en studiementor som hjälper studenter förstå tentafrågor."

	solutionAccess := "Det finns ingen lösning tillgänglig."
	if hasSolution {
		solutionAccess = "Du har tillgång till både tentan och lösningen."
	}

	teachingStyle := "Utmana studenten att tänka själv. Ställ ledande frågor, ge tips och vägledning, men ge INTE det direkta svaret. Guida studenten att komma fram till lösningen på egen hand genom att ge hints och förklaringar av relevanta koncept."
	if giveDirectAnswer {
		teachingStyle = "Ge tydliga, direkta svar och förklaringar. Förklara steg-för-steg och visa den fullständiga lösningen. Om lösning finns, referera till den."
	}

	return baseRole + " " + solutionAccess + " " + teachingStyle + " Svara på svenska." + mathFormattingInstructions
}

// documentMessage builds the synthetic user turn carrying the exam
// document, the solution document when present, and a trailing caption
// naming what was attached.
func documentMessage(examDoc, solutionDoc *entity.Document) entity.ConversationMessage {
	parts := []entity.ContentPart{
		{Type: entity.PartTypeFile, Document: examDoc},
	}

	caption := "Här är tentamen"
	if solutionDoc != nil {
		parts = append(parts, entity.ContentPart{Type: entity.PartTypeFile, Document: solutionDoc})
		caption += " och lösningen"
	}
	caption += "."

	parts = append(parts, entity.ContentPart{Type: entity.PartTypeText, Text: caption})

	return entity.ConversationMessage{
		Role:    entity.RoleUser,
		Content: entity.MessageContent{Parts: parts},
	}
}

// buildPromptContext assembles the full message sequence: the document
// message is re-injected on every request since the server keeps no
// session state that could tell whether a prior turn already carried it.
func buildPromptContext(examDoc, solutionDoc *entity.Document, history []entity.ConversationMessage, window int, giveDirectAnswer bool) *entity.PromptContext {
	recent := lastMessages(history, window)

	messages := make([]entity.ConversationMessage, 0, len(recent)+1)
	messages = append(messages, documentMessage(examDoc, solutionDoc))
	messages = append(messages, recent...)

	return &entity.PromptContext{
		System:   buildSystemPrompt(solutionDoc != nil, giveDirectAnswer),
		Messages: messages,
	}
}
