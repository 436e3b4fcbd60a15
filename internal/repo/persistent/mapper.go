package persistent

import (
	"vidmint/internal/entity"
	"vidmint/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:              m.ID,
		FullName:        m.FullName,
		Email:           m.Email,
		Password:        m.Password,
		Whatsapp:        m.Whatsapp,
		TotalEarnings:   m.TotalEarnings,
		IsSuspended:     m.IsSuspended,
		IsEmailVerified: m.IsEmailVerified,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:              e.ID,
		FullName:        e.FullName,
		Email:           e.Email,
		Password:        e.Password,
		Whatsapp:        e.Whatsapp,
		TotalEarnings:   e.TotalEarnings,
		IsSuspended:     e.IsSuspended,
		IsEmailVerified: e.IsEmailVerified,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToVideoEntity(m *model.VideoModel) *entity.Video {
	if m == nil {
		return nil
	}

	return &entity.Video{
		ID:                m.ID,
		ExternalID:        m.ExternalID,
		UserID:            m.UserID,
		FolderID:          m.FolderID,
		Title:             m.Title,
		Earnings:          m.Earnings,
		WithdrawnEarnings: m.WithdrawnEarnings,
		TotalViews:        m.TotalViews,
		TotalLikes:        m.TotalLikes,
		TotalDislikes:     m.TotalDislikes,
		ThumbnailURL:      m.ThumbnailURL,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func ToVideoModel(e *entity.Video) *model.VideoModel {
	if e == nil {
		return nil
	}

	return &model.VideoModel{
		ID:                e.ID,
		ExternalID:        e.ExternalID,
		UserID:            e.UserID,
		FolderID:          e.FolderID,
		Title:             e.Title,
		Earnings:          e.Earnings,
		WithdrawnEarnings: e.WithdrawnEarnings,
		TotalViews:        e.TotalViews,
		TotalLikes:        e.TotalLikes,
		TotalDislikes:     e.TotalDislikes,
		ThumbnailURL:      e.ThumbnailURL,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func ToFolderEntity(m *model.FolderModel) *entity.Folder {
	if m == nil {
		return nil
	}

	return &entity.Folder{
		ID:        m.ID,
		UserID:    m.UserID,
		ParentID:  m.ParentID,
		Name:      m.Name,
		Color:     m.Color,
		Position:  m.Position,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToFolderModel(e *entity.Folder) *model.FolderModel {
	if e == nil {
		return nil
	}

	return &model.FolderModel{
		ID:        e.ID,
		UserID:    e.UserID,
		ParentID:  e.ParentID,
		Name:      e.Name,
		Color:     e.Color,
		Position:  e.Position,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToPayoutEntity(m *model.PayoutModel) *entity.Payout {
	if m == nil {
		return nil
	}

	return &entity.Payout{
		ID:        m.ID,
		UserID:    m.UserID,
		Amount:    m.Amount,
		Status:    entity.PayoutStatus(m.Status),
		PaidAt:    m.PaidAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToPayoutDetailEntity(m *model.PayoutDetailModel) *entity.PayoutDetail {
	if m == nil {
		return nil
	}

	return &entity.PayoutDetail{
		ID:       m.ID,
		PayoutID: m.PayoutID,
		VideoID:  m.VideoID,
		Amount:   m.Amount,
	}
}

func ToPaymentMethodEntity(m *model.PaymentMethodModel) *entity.PaymentMethod {
	if m == nil {
		return nil
	}

	return &entity.PaymentMethod{
		ID:            m.ID,
		UserID:        m.UserID,
		Method:        m.Method,
		AccountName:   m.AccountName,
		AccountNumber: m.AccountNumber,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToVideoViewEntity(m *model.VideoViewModel) *entity.VideoView {
	if m == nil {
		return nil
	}

	return &entity.VideoView{
		ID:        m.ID,
		VideoID:   m.VideoID,
		IP:        m.IP,
		Country:   m.Country,
		CreatedAt: m.CreatedAt,
	}
}

func ToWebSettingsEntity(m *model.WebSettingsModel) *entity.WebSettings {
	if m == nil {
		return nil
	}

	return &entity.WebSettings{
		ID:        m.ID,
		CPM:       m.CPM,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToSessionEntity(m *model.SessionModel) *entity.Session {
	if m == nil {
		return nil
	}

	return &entity.Session{
		ID:        m.ID,
		ActorID:   m.ActorID,
		Token:     m.Token,
		Audience:  m.Audience,
		UserAgent: m.UserAgent,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

func ToAdminEntity(m *model.AdminModel) *entity.Admin {
	if m == nil {
		return nil
	}

	return &entity.Admin{
		ID:        m.ID,
		Email:     m.Email,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
