// File: internal/services/ai/prompt.go
package ai

import (
	"fmt"
	"strings"

	"github.com/dcastano/go-shopchat/internal/domain"
)

// FallbackReply is returned when the provider answers successfully but with
// an empty payload, so the assistant never goes silent on the customer.
const FallbackReply = "Lo siento, no pude generar una respuesta en este momento. Por favor, intenta de nuevo."

const systemPromptTemplate = `Eres un asistente virtual experto en ventas de zapatos para un e-commerce.
Tu objetivo es ayudar a los clientes a encontrar los zapatos perfectos de una manera amigable y profesional.

INSTRUCCIONES:
- Sé amable, servicial y conversacional.
- Utiliza la información de los productos disponibles para responder a las preguntas de los clientes.
- Si un cliente pregunta por un tipo de zapato, recomienda modelos específicos de la lista.
- Menciona siempre el nombre, la marca, el precio y el stock si es relevante.
- Utiliza el historial de la conversación para entender el contexto y dar respuestas coherentes. No repitas información que ya has dado a menos que te lo pidan.
- Si no sabes la respuesta o un producto no está en la lista, sé honesto y dilo. No inventes productos o características.
- Responde en español.

---
AQUÍ ESTÁ LA LISTA DE PRODUCTOS DISPONIBLES EN LA TIENDA:
%s
---

HISTORIAL DE LA CONVERSACIÓN RECIENTE:
%s

---
MENSAJE ACTUAL DEL USUARIO:
"%s"

Asistente:`

// FormatProducts renders the catalog snapshot as one line per product for
// the prompt.
func FormatProducts(products []domain.Product) string {
	if len(products) == 0 {
		return "No hay productos disponibles en este momento."
	}

	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf(
			"- %s (Marca: %s, Categoría: %s, Talla: %s, Precio: $%.2f, Stock: %d)",
			p.Name, p.Brand, p.Category, p.Size, p.Price, p.Stock,
		))
	}
	return strings.Join(lines, "\n")
}

// BuildPrompt assembles the full sales-assistant prompt from the user
// message, the catalog snapshot and the recent conversation window.
func BuildPrompt(userMessage string, products []domain.Product, chatContext *domain.ChatContext) string {
	history := ""
	if chatContext != nil {
		history = chatContext.FormatForPrompt()
	}
	return fmt.Sprintf(systemPromptTemplate, FormatProducts(products), history, userMessage)
}
