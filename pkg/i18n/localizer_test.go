package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalizerGet(t *testing.T) {
	l := NewLocalizer("en", "ko", "zh-CN")

	assert.Equal(t, "Data not found", l.Get("", ERROR_NOTFOUND))
	assert.Equal(t, "Data not found", l.Get("fr-FR,fr;q=0.9", ERROR_NOTFOUND))
	assert.Equal(t, "데이터를 찾을 수 없습니다", l.Get("ko-KR,ko;q=0.9,en;q=0.8", ERROR_NOTFOUND))
	assert.Equal(t, "数据不存在", l.Get("zh-CN", ERROR_NOTFOUND))
}

func TestLocalizerUnknownID(t *testing.T) {
	l := NewLocalizer("en")

	assert.Equal(t, "error.whatever", l.Get("en", "error.whatever"))
}
