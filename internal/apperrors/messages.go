package apperrors

// User-facing messages. Tests compare against these constants.
const (
	MsgValidation       = "규격에 맞는 값을 넣어주세요."
	MsgMalformedPayload = "잘못된 JSON 데이터입니다."
	MsgInternal         = "서버에서 에러가 발생했습니다."

	MsgDuplicate          = "이미 등록되어 있는 정보입니다."
	MsgDuplicateUserID    = "이미 존재하는 아이디입니다."
	MsgDuplicateEmail     = "이미 등록된 이메일입니다."
	MsgDuplicateCharacter = "이미 존재하는 캐릭터 이름입니다."
	MsgDuplicateItemCode  = "이미 존재하는 아이템 코드입니다."

	MsgBadCredentials     = "존재하지 않는 계정이거나 비밀번호가 일치하지 않습니다."
	MsgAccountNotFound    = "존재하지 않는 계정입니다."
	MsgCharacterNotFound  = "캐릭터를 찾을 수 없습니다."
	MsgDeleteTargetAbsent = "삭제하려는 캐릭터를 찾을 수 없습니다."
	MsgPasswordIncorrect  = "비밀번호가 틀렸습니다."
	MsgOwnershipMismatch  = "계정 정보가 일치하지 않습니다."
	MsgItemNotFound       = "아이템을 찾을 수 없습니다."
)
