package pix

import "fmt"

// CRC16 calcula o CRC16/CCITT-FALSE (polinômio 0x1021, valor inicial 0xFFFF)
// sobre os bytes de data e retorna 4 dígitos hexadecimais maiúsculos.
func CRC16(data string) string {
	crc := uint16(0xFFFF)
	for i := 0; i < len(data); i++ {
		crc ^= uint16(data[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return fmt.Sprintf("%04X", crc)
}
