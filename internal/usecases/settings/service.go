package settings

import (
	"fmt"
	"sort"

	"github.com/vfg2006/brief-generator-api/infrastructure/repository"
)

// Chaves de configuração reconhecidas pela aplicação.
const (
	KeySystemInstruction = "system_instruction"
	KeyStyleSample       = "style_sample"
)

// SettingsService expõe as preferências persistidas da aplicação, como
// a instrução de sistema usada na composição dos briefs.
type SettingsService interface {
	GetAll() (map[string]string, error)
	Update(values map[string]string) error
}

type Service struct {
	settingsRepo repository.SettingsRepository
}

func NewService(settingsRepo repository.SettingsRepository) SettingsService {
	return &Service{
		settingsRepo: settingsRepo,
	}
}

func (s *Service) GetAll() (map[string]string, error) {
	return s.settingsRepo.LoadAll()
}

// Update grava cada par chave/valor individualmente, em ordem
// determinística de chave.
func (s *Service) Update(values map[string]string) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := s.settingsRepo.Save(key, values[key]); err != nil {
			return fmt.Errorf("erro ao gravar configuração %s: %w", key, err)
		}
	}

	return nil
}
