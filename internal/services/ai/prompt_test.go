// File: internal/services/ai/prompt_test.go
package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dcastano/go-shopchat/internal/domain"
)

func TestFormatProducts(t *testing.T) {
	products := []domain.Product{
		{Name: "Air Zoom Pegasus 40", Brand: "Nike", Category: "Running", Size: "42", Price: 129.99, Stock: 15},
		{Name: "Suede Classic XXI", Brand: "Puma", Category: "Casual", Size: "43", Price: 75, Stock: 25},
	}

	got := FormatProducts(products)
	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "- Air Zoom Pegasus 40 (Marca: Nike, Categoría: Running, Talla: 42, Precio: $129.99, Stock: 15)", lines[0])
	assert.Equal(t, "- Suede Classic XXI (Marca: Puma, Categoría: Casual, Talla: 43, Precio: $75.00, Stock: 25)", lines[1])
}

func TestFormatProducts_EmptyCatalog(t *testing.T) {
	assert.Equal(t, "No hay productos disponibles en este momento.", FormatProducts(nil))
}

func TestBuildPrompt(t *testing.T) {
	products := []domain.Product{
		{Name: "Clifton 9", Brand: "Hoka", Category: "Running", Size: "43", Price: 145, Stock: 12},
	}
	chatContext := domain.NewChatContext([]domain.ChatMessage{
		{SessionID: "s1", Role: domain.RoleUser, Message: "Hola"},
		{SessionID: "s1", Role: domain.RoleAssistant, Message: "¡Hola! ¿En qué puedo ayudarte?"},
	})

	prompt := BuildPrompt("Busco zapatillas para correr", products, chatContext)

	assert.Contains(t, prompt, "- Clifton 9 (Marca: Hoka")
	assert.Contains(t, prompt, "Usuario: Hola\nAsistente: ¡Hola! ¿En qué puedo ayudarte?")
	assert.Contains(t, prompt, `"Busco zapatillas para correr"`)
	assert.True(t, strings.HasSuffix(prompt, "Asistente:"))
}

func TestBuildPrompt_NilContext(t *testing.T) {
	prompt := BuildPrompt("Hola", nil, nil)
	assert.Contains(t, prompt, "No hay productos disponibles en este momento.")
}
