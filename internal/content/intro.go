package content

// Intro copy of the home page, shared by the terminal and HTML renditions
const (
	IntroTitle = "欢迎来到我的博客"
	IntroText  = "这里记录着我的技术成长历程，分享项目经验与学习心得。探索代码的无限可能，创造美好的数字世界。"
)
