package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/storage"
	"github.com/RajivKhattri/newsportal/mocks"
)

func newSvcWithDocuments(t *testing.T) (*Service, *mocks.MockStorage, *mocks.MockDocuments, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	md := mocks.NewMockDocuments(ctrl)
	svc := New(st, nil, md, mocks.NewMockMailer(ctrl), testCfg())
	return svc, st, md, ctrl
}

func TestUploadURL_CertificateForAuthor(t *testing.T) {
	t.Parallel()

	svc, _, md, ctrl := newSvcWithDocuments(t)
	defer ctrl.Finish()

	ident := authorIdent()

	md.EXPECT().DocumentUploadURL(gomock.Any(), ident.UserID, storage.UploadKindCertificate, "application/pdf", int64(1024)).
		Return(&storage.UploadInfo{
			UploadURL: "https://minio.local/presigned",
			Key:       "certificate/" + ident.UserID.String() + "/cert.pdf",
			Expires:   15 * time.Minute,
		}, nil)

	info, err := svc.UploadURL(context.Background(), ident, storage.UploadKindCertificate, "application/pdf", 1024)
	require.NoError(t, err)
	require.NotEmpty(t, info.UploadURL)
}

func TestUploadURL_CertificateForbiddenForReader(t *testing.T) {
	t.Parallel()

	svc, _, _, ctrl := newSvcWithDocuments(t)
	defer ctrl.Finish()

	ident := &Identity{UserID: uuid.New(), Role: models.RoleUser}

	_, err := svc.UploadURL(context.Background(), ident, storage.UploadKindCertificate, "application/pdf", 1024)
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestUploadURL_ApprovalDocumentAdminOnly(t *testing.T) {
	t.Parallel()

	svc, _, _, ctrl := newSvcWithDocuments(t)
	defer ctrl.Finish()

	_, err := svc.UploadURL(context.Background(), authorIdent(), storage.UploadKindApprovalDocument, "application/pdf", 1024)
	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestUploadURL_UnknownKind(t *testing.T) {
	t.Parallel()

	svc, _, _, ctrl := newSvcWithDocuments(t)
	defer ctrl.Finish()

	_, err := svc.UploadURL(context.Background(), adminIdent(), storage.UploadKind("weird"), "image/png", 10)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestConfirmUpload_ProfilePicture(t *testing.T) {
	t.Parallel()

	svc, st, md, ctrl := newSvcWithDocuments(t)
	defer ctrl.Finish()

	ident := &Identity{UserID: uuid.New(), Role: models.RoleUser}
	key := "picture/" + ident.UserID.String() + "/avatar.png"

	md.EXPECT().CheckDocumentUpload(gomock.Any(), ident.UserID, storage.UploadKindProfilePicture, key).
		Return("https://cdn.local/"+key, nil)
	st.EXPECT().ConfirmPictureUpload(gomock.Any(), ident.UserID, key).
		Return(&models.Profile{UserID: ident.UserID, PictureKey: key}, nil)

	url, err := svc.ConfirmUpload(context.Background(), ident, storage.UploadKindProfilePicture, key, uuid.NullUUID{})
	require.NoError(t, err)
	require.Contains(t, url, key)
}

func TestConfirmUpload_ArticleImageRequiresArticleID(t *testing.T) {
	t.Parallel()

	svc, _, md, ctrl := newSvcWithDocuments(t)
	defer ctrl.Finish()

	ident := authorIdent()
	key := "article-image/" + ident.UserID.String() + "/cover.jpg"

	md.EXPECT().CheckDocumentUpload(gomock.Any(), ident.UserID, storage.UploadKindArticleImage, key).
		Return("https://cdn.local/"+key, nil)

	_, err := svc.ConfirmUpload(context.Background(), ident, storage.UploadKindArticleImage, key, uuid.NullUUID{})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestConfirmUpload_ObjectMissing(t *testing.T) {
	t.Parallel()

	svc, _, md, ctrl := newSvcWithDocuments(t)
	defer ctrl.Finish()

	ident := authorIdent()

	md.EXPECT().CheckDocumentUpload(gomock.Any(), ident.UserID, storage.UploadKindCertificate, "certificate/none").
		Return("", storage.ErrNotFoundObject)

	_, err := svc.ConfirmUpload(context.Background(), ident, storage.UploadKindCertificate, "certificate/none", uuid.NullUUID{})
	require.ErrorIs(t, err, ErrNotFound)
}
