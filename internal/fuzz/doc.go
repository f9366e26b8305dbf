// Package fuzztests houses Go fuzz harnesses that exercise the session log
// codecs (bytes -> events -> bytes). Its goal is to smoke test robustness
// and guard against panics or allocator explosions on arbitrary inputs.
//
// Назначение: запускать fuzz-обработчики, которые скармливают произвольные
// байты кодекам журналов сессий и проверяют повторное кодирование.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/sessionlog.
package fuzztests
