package radio

//go:generate moq -out mocks/radio.gen.go -pkg mocks . PlaylistSource PlayStorage GenreStorage GenreProvider StorageService
