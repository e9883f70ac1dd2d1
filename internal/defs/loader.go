// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadTowerDefinitions replaces the built-in tower table with the contents
// of a JSON file. Used for balancing without recompiling.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	TowerLibrary = make(map[string]TowerDefinition, len(towerDefs))
	for _, def := range towerDefs {
		TowerLibrary[def.ID] = def
	}

	log.Printf("Loaded %d tower definitions from %s", len(TowerLibrary), path)
	return nil
}

// LoadEnemyDefinitions replaces the built-in enemy table with the contents
// of a JSON file.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	EnemyLibrary = make(map[string]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		EnemyLibrary[def.ID] = def
	}

	log.Printf("Loaded %d enemy definitions from %s", len(EnemyLibrary), path)
	return nil
}
