package models

// TokenPair — пара токенов, выдаваемая при аутентификации и обновлении.
//
// Описание:
//   - AccessToken — короткоживущий JWT для доступа к API;
//   - RefreshToken — долгоживущий JWT для выпуска новой пары;
//     сервер его не хранит, поэтому старый refresh действует до своего истечения.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
