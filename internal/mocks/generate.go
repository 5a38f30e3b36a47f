package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/match --output domain/match --outpkg matchmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name LiveMatchSource --dir ../usecase --output usecase --outpkg sourcemock --filename live_match_source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name ScoreSource --dir ../usecase --output usecase --outpkg sourcemock --filename score_source_mock.go
