package media

import (
	domain "file-manager-api/internal/domain/media"
)

func fromDBModel(model *Media) *domain.Media {
	var m = &domain.Media{
		ID:             domain.ID(model.ID),
		ModelType:      model.ModelType,
		ModelID:        model.ModelID,
		CollectionName: model.CollectionName,
		FileName:       model.FileName,
		MimeType:       model.MimeType,
		SizeBytes:      model.SizeBytes,
		StorageKey:     model.StorageKey,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return m
}

func fromDBModels(models *Medias) domain.Medias {
	ms := make(domain.Medias, len(*models))
	for idx, m := range *models {
		ms[idx] = fromDBModel(m)
	}

	return ms
}
