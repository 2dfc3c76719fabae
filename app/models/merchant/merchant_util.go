package merchant

// IsActive 检查商户是否可用
func (m *Merchant) IsActive() bool {
	return m.Active
}
