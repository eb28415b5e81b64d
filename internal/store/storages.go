package store

import "github.com/MKhiriev/meme-forge/internal/logger"

// Storages aggregates every repository built on one [DB].
type Storages struct {
	UserRepository       UserRepository
	GenerationRepository GenerationRepository
	MemeRepository       MemeRepository
	CharacterRepository  CharacterRepository
	AssetRepository      AssetRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, logger),
		GenerationRepository: NewGenerationRepository(db, logger),
		MemeRepository:       NewMemeRepository(db, logger),
		CharacterRepository:  NewCharacterRepository(db, logger),
		AssetRepository:      NewAssetRepository(db, logger),
	}
}
