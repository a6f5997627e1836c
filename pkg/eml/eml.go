// Package eml extrai o texto legível de mensagens RFC 822, usadas como
// contexto de mercado nos briefs.
package eml

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"
)

// ExtractText devolve o corpo textual da mensagem. Em mensagens
// multipart, a primeira parte text/plain que não é anexo vence; sem uma
// parte assim, o corpo inteiro é devolvido como está. Falhas de parse
// não interrompem o chamador: o retorno vira um marcador legível.
func ExtractText(raw []byte) string {
	msg, err := mail.ReadMessage(strings.NewReader(string(raw)))
	if err != nil {
		return fmt.Sprintf("[conteúdo do e-mail ilegível: %v]", err)
	}

	contentType := msg.Header.Get("Content-Type")
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		return decodeBody(msg.Body, msg.Header.Get("Content-Transfer-Encoding"))
	}

	reader := multipart.NewReader(msg.Body, params["boundary"])
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Sprintf("[conteúdo do e-mail ilegível: %v]", err)
		}

		partType, _, err := mime.ParseMediaType(part.Header.Get("Content-Type"))
		if err != nil || partType != "text/plain" {
			continue
		}
		if isAttachment(part.Header.Get("Content-Disposition")) {
			continue
		}

		return decodeBody(part, part.Header.Get("Content-Transfer-Encoding"))
	}

	return "[mensagem sem parte textual]"
}

func isAttachment(disposition string) bool {
	if disposition == "" {
		return false
	}
	kind, _, err := mime.ParseMediaType(disposition)
	if err != nil {
		return false
	}
	return kind == "attachment"
}

func decodeBody(body io.Reader, encoding string) string {
	if strings.EqualFold(encoding, "quoted-printable") {
		body = quotedprintable.NewReader(body)
	}

	content, err := io.ReadAll(body)
	if err != nil {
		return fmt.Sprintf("[conteúdo do e-mail ilegível: %v]", err)
	}

	return strings.TrimSpace(string(content))
}
